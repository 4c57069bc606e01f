// Package notify delivers best-effort push and WhatsApp notifications.
//
// Nothing in this package reports a delivery failure to the code that
// recorded the event: results are logged and dropped.
package notify

import (
	"fmt"
	"strings"

	"cashbook/internal/models"
)

// Message is a notification ready for delivery.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewTransactionMessage renders the notification sent after a transaction
// is recorded, e.g. "expense -$30.00 • repair • Ali".
func NewTransactionMessage(tx *models.Transaction) Message {
	sign := "+"
	if tx.Type == models.TransactionTypeExpense || tx.Type == models.TransactionTypePayDebt {
		sign = "-"
	}

	parts := []string{
		fmt.Sprintf("%s %s$%s", tx.Type, sign, tx.Amount.Abs().StringFixed(2)),
		string(tx.Category),
	}
	if tx.Person != nil && strings.TrimSpace(*tx.Person) != "" {
		parts = append(parts, strings.TrimSpace(*tx.Person))
	}

	return Message{
		Title: "New transaction",
		Body:  strings.Join(parts, " • "),
	}
}
