package services

import (
	"github.com/Swoyesh/FinSense/internal/forecast"
	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordsToTransactions converts parsed statement rows into storable transactions for userID.
func RecordsToTransactions(userID uuid.UUID, records []forecast.Record) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, models.Transaction{
			UserID:      userID,
			Reference:   r.Reference,
			OccurredAt:  r.Date,
			Description: r.Description,
			Debit:       decimal.NewFromFloat(r.Debit).Round(2),
			Credit:      decimal.NewFromFloat(r.Credit).Round(2),
			Channel:     r.Channel,
			Category:    r.Category,
		})
	}
	return transactions
}

// TransactionsToRecords converts stored transactions back into aggregator input.
func TransactionsToRecords(transactions []models.Transaction) []forecast.Record {
	records := make([]forecast.Record, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, forecast.Record{
			Date:        t.OccurredAt,
			Reference:   t.Reference,
			Description: t.Description,
			Debit:       t.Debit.InexactFloat64(),
			Credit:      t.Credit.InexactFloat64(),
			Channel:     t.Channel,
			Category:    t.Category,
		})
	}
	return records
}
