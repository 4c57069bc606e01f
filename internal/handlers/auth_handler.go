package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/services"
)

// AuthHandler handles owner login.
type AuthHandler struct {
	authService  services.AuthServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{authService: authService, auditService: auditService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles owner login
// @Summary     Log in
// @Description Exchange the owner password for a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Owner password"
// @Success     200 {object} LoginResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input or authentication disabled"
// @Failure     401 {object} ErrorResponse "Invalid password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	token, expiresAt, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			h.auditService.Log(c.Request.Context(), "LOGIN_FAILED", "owner", "", c.ClientIP(), nil)
		}
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "LOGIN", "owner", "", c.ClientIP(), nil)

	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
