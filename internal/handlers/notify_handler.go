package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/notify"
)

// NotifyHandler relays push and WhatsApp messages to the providers.
type NotifyHandler struct {
	push notify.Pusher
	text notify.TextSender
}

// NewNotifyHandler creates a new NotifyHandler.
func NewNotifyHandler(push notify.Pusher, text notify.TextSender) *NotifyHandler {
	return &NotifyHandler{push: push, text: text}
}

// PushRequest is the push relay payload.
type PushRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
}

// WhatsAppRequest is the WhatsApp relay payload.
type WhatsAppRequest struct {
	To      string `json:"to" binding:"required,max=32"`
	Message string `json:"message" binding:"required,max=4096"`
}

// RelayResponse mirrors a provider result.
type RelayResponse struct {
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Push relays a push notification
// @Summary     Push relay
// @Description Send a push notification to every subscribed device. Unconfigured push is reported as skipped.
// @Tags        notify
// @Accept      json
// @Produce     json
// @Param       request body PushRequest true "Notification"
// @Success     200 {object} RelayResponse "Sent or skipped"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} RelayResponse "Provider rejected the request"
// @Router      /notify [post]
func (h *NotifyHandler) Push(c *gin.Context) {
	var req PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	respondWithResult(c, h.push.Push(c.Request.Context(), req.Title, req.Message))
}

// WhatsApp relays a WhatsApp text message
// @Summary     WhatsApp relay
// @Description Send a WhatsApp text message. Unconfigured WhatsApp is reported as skipped.
// @Tags        notify
// @Accept      json
// @Produce     json
// @Param       request body WhatsAppRequest true "Message"
// @Success     200 {object} RelayResponse "Sent or skipped"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} RelayResponse "Provider rejected the request"
// @Router      /whatsapp [post]
func (h *NotifyHandler) WhatsApp(c *gin.Context) {
	var req WhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	respondWithResult(c, h.text.SendText(c.Request.Context(), req.To, req.Message))
}

// respondWithResult maps a provider result onto the relay response shape.
func respondWithResult(c *gin.Context, res notify.Result) {
	switch {
	case res.Skipped:
		c.JSON(http.StatusOK, gin.H{"ok": true, "skipped": true, "reason": res.Reason})
	case res.OK:
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": resultData(res)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "data": resultData(res)})
	}
}

func resultData(res notify.Result) any {
	if res.Data == nil {
		return gin.H{}
	}
	return res.Data
}
