package repositories

import (
	"fmt"
	"time"

	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const transactionBatchSize = 500

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, transactionBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetWithFilters retrieves transactions matching filters. A non-positive
// Limit returns every matching row.
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)

	if filters.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filters.EndDate)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.DebitsOnly {
		query = query.Where("debit > 0")
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	find := query.Session(&gorm.Session{}).Order("occurred_at DESC")
	if filters.Limit > 0 {
		find = find.Offset(filters.Offset).Limit(filters.Limit)
	}

	if err := find.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetCategorySummary retrieves debit totals grouped by category
func (r *transactionRepository) GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			category,
			COUNT(*) as transaction_count,
			SUM(debit) as total_amount,
			AVG(debit) as average_amount
		FROM transactions
		WHERE user_id = ?
			AND occurred_at BETWEEN ? AND ?
			AND debit > 0
		GROUP BY category
		ORDER BY total_amount DESC
	`

	if err := r.db.Raw(query, userID, startDate, endDate).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return summaries, nil
}

// DeleteByUserID removes a user's stored history and reports how many rows went
func (r *transactionRepository) DeleteByUserID(userID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
