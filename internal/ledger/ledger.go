// Package ledger derives cash figures from transaction and debt records.
//
// Every function here is pure: it reads the slice it is given, keeps only
// local accumulators and returns new values. Callers decide which window of
// records to fetch; the package never talks to the store.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"cashbook/internal/models"
)

// ErrUnknownTransactionType is returned for a type outside the known set.
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// Anomaly describes a record whose enum value is outside the known set.
// Anomalous records never contribute to a total.
type Anomaly struct {
	ID    string `json:"id,omitempty"`
	Field string `json:"field"`
	Value string `json:"value"`
	Count int64  `json:"count,omitempty"`
}

// direction reports how t moves cash: +1 or -1 applied to the absolute
// amount, or 0 when the stored sign is authoritative.
func direction(t models.TransactionType) (int, error) {
	switch t {
	case models.TransactionTypeSale, models.TransactionTypeReceiveDebt:
		return 1, nil
	case models.TransactionTypeExpense, models.TransactionTypePayDebt:
		return -1, nil
	case models.TransactionTypeAdjust:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionType, string(t))
}

// CashDelta returns the signed contribution of tx to the cash position.
// Directional types ignore the stored sign; adjust keeps it.
func CashDelta(tx *models.Transaction) (decimal.Decimal, error) {
	dir, err := direction(tx.Type)
	if err != nil {
		return decimal.Zero, err
	}
	switch dir {
	case 1:
		return tx.Amount.Abs(), nil
	case -1:
		return tx.Amount.Abs().Neg(), nil
	default:
		return tx.Amount, nil
	}
}

func typeAnomaly(tx *models.Transaction) Anomaly {
	return Anomaly{ID: tx.ID, Field: "type", Value: string(tx.Type)}
}

// Balance sums CashDelta over txs. Records with an unknown type are left out
// of the sum and returned as anomalies.
func Balance(txs []models.Transaction) (decimal.Decimal, []Anomaly) {
	total := decimal.Zero
	var anomalies []Anomaly
	for i := range txs {
		delta, err := CashDelta(&txs[i])
		if err != nil {
			anomalies = append(anomalies, typeAnomaly(&txs[i]))
			continue
		}
		total = total.Add(delta)
	}
	return total, anomalies
}

// Summary is the sales/expenses/net roll-up of a window of transactions.
type Summary struct {
	Sales     decimal.Decimal `json:"sales"`
	Expenses  decimal.Decimal `json:"expenses"`
	Net       decimal.Decimal `json:"net"`
	Count     int             `json:"count"`
	Anomalies []Anomaly       `json:"anomalies,omitempty"`
}

// InWindow reports whether the ISO date lies in [from, to]. An empty bound
// leaves that side open.
func InWindow(txDate, from, to string) bool {
	if from != "" && txDate < from {
		return false
	}
	if to != "" && txDate > to {
		return false
	}
	return true
}

// Summarize rolls up the transactions of txs whose TxDate lies in [from, to].
// Sales and expenses only count their own type; net includes every known
// type.
func Summarize(txs []models.Transaction, from, to string) Summary {
	s := Summary{Sales: decimal.Zero, Expenses: decimal.Zero, Net: decimal.Zero}
	for i := range txs {
		tx := &txs[i]
		if !InWindow(tx.TxDate, from, to) {
			continue
		}
		delta, err := CashDelta(tx)
		if err != nil {
			s.Anomalies = append(s.Anomalies, typeAnomaly(tx))
			continue
		}
		s.Count++
		s.Net = s.Net.Add(delta)
		switch tx.Type {
		case models.TransactionTypeSale:
			s.Sales = s.Sales.Add(tx.Amount.Abs())
		case models.TransactionTypeExpense:
			s.Expenses = s.Expenses.Add(tx.Amount.Abs())
		}
	}
	return s
}

// CategoryRow is the per-category slice of a report.
type CategoryRow struct {
	Category models.Category `json:"category"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// ByCategory groups txs by their raw category value and returns one row per
// category present, sorted by net descending. Ties keep encounter order.
// Categories outside the known set are kept under their literal value.
func ByCategory(txs []models.Transaction) ([]CategoryRow, []Anomaly) {
	rows := []CategoryRow{}
	index := make(map[models.Category]int)
	var anomalies []Anomaly

	for i := range txs {
		tx := &txs[i]
		delta, err := CashDelta(tx)
		if err != nil {
			anomalies = append(anomalies, typeAnomaly(tx))
			continue
		}

		pos, ok := index[tx.Category]
		if !ok {
			pos = len(rows)
			index[tx.Category] = pos
			rows = append(rows, CategoryRow{
				Category: tx.Category,
				Sales:    decimal.Zero,
				Expenses: decimal.Zero,
				Net:      decimal.Zero,
			})
		}

		row := &rows[pos]
		row.Net = row.Net.Add(delta)
		switch tx.Type {
		case models.TransactionTypeSale:
			row.Sales = row.Sales.Add(tx.Amount.Abs())
		case models.TransactionTypeExpense:
			row.Expenses = row.Expenses.Add(tx.Amount.Abs())
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Net.GreaterThan(rows[j].Net)
	})
	return rows, anomalies
}

// TypeTotal is a per-type aggregate computed by the store.
type TypeTotal struct {
	Type      models.TransactionType
	AbsSum    decimal.Decimal
	SignedSum decimal.Decimal
	Count     int64
}

// BalanceFromTotals applies the cash rule to per-type aggregates, giving the
// same result as Balance over every row without fetching them.
func BalanceFromTotals(totals []TypeTotal) (decimal.Decimal, []Anomaly) {
	total := decimal.Zero
	var anomalies []Anomaly
	for _, t := range totals {
		dir, err := direction(t.Type)
		if err != nil {
			anomalies = append(anomalies, Anomaly{Field: "type", Value: string(t.Type), Count: t.Count})
			continue
		}
		switch dir {
		case 1:
			total = total.Add(t.AbsSum)
		case -1:
			total = total.Sub(t.AbsSum)
		default:
			total = total.Add(t.SignedSum)
		}
	}
	return total, anomalies
}

// SummaryFromTotals builds a Summary from per-type aggregates.
func SummaryFromTotals(totals []TypeTotal) Summary {
	net, anomalies := BalanceFromTotals(totals)
	s := Summary{Sales: decimal.Zero, Expenses: decimal.Zero, Net: net, Anomalies: anomalies}
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeSale:
			s.Sales = s.Sales.Add(t.AbsSum)
		case models.TransactionTypeExpense:
			s.Expenses = s.Expenses.Add(t.AbsSum)
		}
		if t.Type.Valid() {
			s.Count += int(t.Count)
		}
	}
	return s
}
