package ledger

import (
	"github.com/shopspring/decimal"

	"cashbook/internal/models"
)

// DebtSummary holds the outstanding receivable and payable totals.
// The two figures are never netted against each other.
type DebtSummary struct {
	Receivable decimal.Decimal `json:"receivable"`
	Payable    decimal.Decimal `json:"payable"`
	OpenCount  int             `json:"open_count"`
	Anomalies  []Anomaly       `json:"anomalies,omitempty"`
}

// DebtTotals sums open debts by direction. Paid debts contribute nothing.
// A debt with an unknown status or direction is reported as an anomaly and
// contributes nothing either.
func DebtTotals(debts []models.Debt) DebtSummary {
	s := DebtSummary{Receivable: decimal.Zero, Payable: decimal.Zero}
	for i := range debts {
		d := &debts[i]
		switch d.Status {
		case models.DebtStatusPaid:
			continue
		case models.DebtStatusOpen:
		default:
			s.Anomalies = append(s.Anomalies, Anomaly{ID: d.ID, Field: "status", Value: string(d.Status)})
			continue
		}

		switch d.Direction {
		case models.DebtOwedToMe:
			s.Receivable = s.Receivable.Add(d.Amount)
		case models.DebtOwedByMe:
			s.Payable = s.Payable.Add(d.Amount)
		default:
			s.Anomalies = append(s.Anomalies, Anomaly{ID: d.ID, Field: "direction", Value: string(d.Direction)})
			continue
		}
		s.OpenCount++
	}
	return s
}
