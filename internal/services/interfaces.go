package services

import (
	"context"
	"io"
	"time"

	"github.com/Swoyesh/FinSense/internal/forecast"
	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/google/uuid"
)

// BudgetPlannerServiceInterface runs one forecast-and-allocate pass
type BudgetPlannerServiceInterface interface {
	// Plan aggregates records into a monthly matrix and plans from it
	Plan(ctx context.Context, records []forecast.Record, income, targetSavings float64) (*models.BudgetPlan, error)

	// PlanMatrix plans from an already aggregated matrix
	PlanMatrix(ctx context.Context, matrix *forecast.MonthlyMatrix, income, targetSavings float64) (*models.BudgetPlan, error)
}

// BudgetServiceInterface defines the stored budget workflow
type BudgetServiceInterface interface {
	PredictAndStore(ctx context.Context, userID uuid.UUID, records []forecast.Record, income, targetSavings float64) (*models.BudgetPlan, error)
	PlanFromHistory(ctx context.Context, userID uuid.UUID, income, targetSavings float64) (*models.BudgetPlan, error)
	ListBudgets(userID uuid.UUID, month string) ([]models.BudgetEntry, error)
	ListMonths(userID uuid.UUID) ([]string, error)
	ExportBudgetXLSX(userID uuid.UUID, month string, w io.Writer) error
	CategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error)
}

// CategoryServiceInterface labels statement rows that arrive without a category
type CategoryServiceInterface interface {
	// Categorize returns the label for a description, "others" when nothing matches
	Categorize(description string) string

	// CategorizeByMerchant categorizes a description by known merchant names
	CategorizeByMerchant(merchantName string) (category string, confidence float64)

	// CategorizeByDescription categorizes a description by keywords
	CategorizeByDescription(description string) (category string, confidence float64)

	// FuzzyMatchMerchant performs fuzzy matching on merchant names
	FuzzyMatchMerchant(input string) (merchant string, score float64)

	// CategorizeTransaction fills in the result for one stored transaction
	CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult

	// BatchCategorize categorizes multiple transactions
	BatchCategorize(transactions []*models.Transaction) []*models.CategorizationResult
}

// HistoryGeneratorInterface generates synthetic categorized history for development
type HistoryGeneratorInterface interface {
	GenerateMonths(userID uuid.UUID, end time.Time, months int) []models.Transaction
	GetMerchantPool() []models.MerchantInfo
	SelectRandomMerchant(category string) models.MerchantInfo
	GenerateAmount(category string) float64
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
