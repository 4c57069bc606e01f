package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cashbook/internal/ledger"
	"cashbook/internal/logger"
	"cashbook/internal/models"
)

// newestFirst is the ordering contract for every transaction listing.
const newestFirst = "tx_date DESC, created_at DESC"

type typeTotalRow struct {
	Type      string
	AbsSum    decimal.Decimal
	SignedSum decimal.Decimal
	TxCount   int64
}

// sumByType aggregates q per transaction type in the store.
func sumByType(q *gorm.DB) ([]ledger.TypeTotal, error) {
	var rows []typeTotalRow
	err := q.Select("type, COALESCE(SUM(ABS(amount)), 0) AS abs_sum, COALESCE(SUM(amount), 0) AS signed_sum, COUNT(*) AS tx_count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]ledger.TypeTotal, 0, len(rows))
	for _, r := range rows {
		totals = append(totals, ledger.TypeTotal{
			Type:      models.TransactionType(r.Type),
			AbsSum:    r.AbsSum,
			SignedSum: r.SignedSum,
			Count:     r.TxCount,
		})
	}
	return totals, nil
}

// fetchWindow returns every transaction dated in [from, to], newest first.
// The window is not capped.
func fetchWindow(q *gorm.DB, from, to string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := q.Where("tx_date >= ? AND tx_date <= ?", from, to).
		Order(newestFirst).
		Find(&txs).Error
	return txs, err
}

func warnAnomalies(view string, anomalies []ledger.Anomaly) {
	if len(anomalies) == 0 {
		return
	}
	logger.Get().Warnw("Records with unknown enum values excluded from totals",
		"view", view,
		"count", len(anomalies),
		"anomalies", anomalies,
	)
}
