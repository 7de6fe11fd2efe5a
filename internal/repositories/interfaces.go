package repositories

import (
	"time"

	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	CreateBatch(transactions []models.Transaction) error
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error)
	DeleteByUserID(userID uuid.UUID) (int64, error)
}

// BudgetRepositoryInterface defines the contract for stored budget plans
type BudgetRepositoryInterface interface {
	CreateBatch(entries []models.BudgetEntry) error
	// ReplaceMonth swaps every entry of userID for month with entries atomically.
	ReplaceMonth(userID uuid.UUID, month string, entries []models.BudgetEntry) error
	GetByUserAndMonth(userID uuid.UUID, month string) ([]models.BudgetEntry, error)
	ListByUser(userID uuid.UUID) ([]models.BudgetEntry, error)
	ListMonths(userID uuid.UUID) ([]string, error)
	// DeleteOlderThan removes entries of every user whose month sorts before cutoff.
	DeleteOlderThan(cutoff string) (int64, error)
}
