// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cashbook/internal/ledger"
	"cashbook/internal/models"
)

var registerOnce sync.Once

// Register registers all custom validators with the Gin binding engine.
// Calls after the first are no-ops.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			register(v)
		}
	})
}

func register(v *validator.Validate) {
	_ = v.RegisterValidation("tx_type", validateTransactionType)
	_ = v.RegisterValidation("tx_category", validateCategory)
	_ = v.RegisterValidation("debt_direction", validateDebtDirection)
	_ = v.RegisterValidation("iso_date", validateISODate)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validateDebtDirection(fl validator.FieldLevel) bool {
	return models.DebtDirection(fl.Field().String()).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	return ledger.ValidDate(fl.Field().String())
}
