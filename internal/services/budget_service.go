package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/Swoyesh/FinSense/internal/config"
	"github.com/Swoyesh/FinSense/internal/forecast"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const budgetSheetName = "Budget"

var (
	ErrInvalidMonth   = errors.New("month must be formatted as YYYY-MM")
	ErrNoTransactions = errors.New("no stored transactions for user")
)

type budgetService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	planner         BudgetPlannerServiceInterface
	retentionMonths int
	now             func() time.Time
	logger          *slog.Logger
}

// NewBudgetService creates a new BudgetServiceInterface instance
func NewBudgetService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	planner BudgetPlannerServiceInterface,
	cfg config.BudgetConfig,
	logger *slog.Logger,
) BudgetServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &budgetService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		planner:         planner,
		retentionMonths: cfg.RetentionMonths,
		now:             time.Now,
		logger:          logger,
	}
}

// RetentionCutoff returns the oldest budget month kept when pruning at now:
// the first of now's month minus months, as YYYY-MM.
func RetentionCutoff(now time.Time, months int) string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return models.FormatBudgetMonth(first.AddDate(0, -months, 0))
}

// PredictAndStore prunes expired budgets, stores the statement rows, plans
// the next month and stores one budget row per category. Records are
// aggregated first, so a table that cannot be planned is never stored.
func (s *budgetService) PredictAndStore(ctx context.Context, userID uuid.UUID, records []forecast.Record, income, targetSavings float64) (*models.BudgetPlan, error) {
	matrix, err := forecast.Aggregate(records)
	if err != nil {
		return nil, err
	}

	s.pruneExpired()

	if err := s.transactionRepo.CreateBatch(RecordsToTransactions(userID, records)); err != nil {
		return nil, fmt.Errorf("failed to store transactions: %w", err)
	}

	return s.planAndStore(ctx, userID, matrix, income, targetSavings)
}

// PlanFromHistory plans from every transaction stored for userID.
func (s *budgetService) PlanFromHistory(ctx context.Context, userID uuid.UUID, income, targetSavings float64) (*models.BudgetPlan, error) {
	s.pruneExpired()

	transactions, _, err := s.transactionRepo.GetWithFilters(models.TransactionFilters{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}

	matrix, err := forecast.Aggregate(TransactionsToRecords(transactions))
	if err != nil {
		return nil, err
	}

	return s.planAndStore(ctx, userID, matrix, income, targetSavings)
}

func (s *budgetService) planAndStore(ctx context.Context, userID uuid.UUID, matrix *forecast.MonthlyMatrix, income, targetSavings float64) (*models.BudgetPlan, error) {
	plan, err := s.planner.PlanMatrix(ctx, matrix, income, targetSavings)
	if err != nil {
		return nil, err
	}

	if plan.InsufficientHistory {
		return plan, nil
	}

	month := models.FormatBudgetMonth(plan.ForecastMonth)
	if err := s.budgetRepo.ReplaceMonth(userID, month, budgetEntries(userID, month, plan)); err != nil {
		return nil, fmt.Errorf("failed to store budget: %w", err)
	}

	s.logger.Info("Budget stored", "user_id", userID, "month", month, "categories", len(plan.Budget))
	return plan, nil
}

func (s *budgetService) pruneExpired() {
	if s.retentionMonths <= 0 {
		return
	}
	cutoff := RetentionCutoff(s.now(), s.retentionMonths)
	deleted, err := s.budgetRepo.DeleteOlderThan(cutoff)
	if err != nil {
		s.logger.Warn("Failed to prune expired budgets", "cutoff", cutoff, "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("Pruned expired budgets", "cutoff", cutoff, "deleted", deleted)
	}
}

func budgetEntries(userID uuid.UUID, month string, plan *models.BudgetPlan) []models.BudgetEntry {
	categories := make([]string, 0, len(plan.Budget))
	for category := range plan.Budget {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	entries := make([]models.BudgetEntry, 0, len(categories))
	for _, category := range categories {
		entries = append(entries, models.BudgetEntry{
			UserID:    userID,
			Month:     month,
			Category:  category,
			Allocated: decimal.NewFromFloat(plan.Budget[category]).Round(2),
			Forecast:  decimal.NewFromFloat(plan.Forecasts[category]).Round(2),
		})
	}
	return entries
}

// ListBudgets returns the stored rows for month, or every stored row when month is empty.
func (s *budgetService) ListBudgets(userID uuid.UUID, month string) ([]models.BudgetEntry, error) {
	if month == "" {
		return s.budgetRepo.ListByUser(userID)
	}
	if _, err := time.Parse(models.BudgetMonthLayout, month); err != nil {
		return nil, ErrInvalidMonth
	}
	return s.budgetRepo.GetByUserAndMonth(userID, month)
}

func (s *budgetService) ListMonths(userID uuid.UUID) ([]string, error) {
	return s.budgetRepo.ListMonths(userID)
}

// ExportBudgetXLSX writes the stored budget for month as a workbook with the
// columns Category, Budget_Amount and Forecasted_Amount.
func (s *budgetService) ExportBudgetXLSX(userID uuid.UUID, month string, w io.Writer) error {
	if _, err := time.Parse(models.BudgetMonthLayout, month); err != nil {
		return ErrInvalidMonth
	}

	entries, err := s.budgetRepo.GetByUserAndMonth(userID, month)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", budgetSheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	header := []string{"Category", "Budget_Amount", "Forecasted_Amount"}
	if err := f.SetSheetRow(budgetSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	f.SetCellStyle(budgetSheetName, "A1", "C1", headerStyle)

	for i, entry := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{entry.Category, entry.Allocated.InexactFloat64(), entry.Forecast.InexactFloat64()}
		if err := f.SetSheetRow(budgetSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	f.SetColWidth(budgetSheetName, "A", "C", 22)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// CategorySummary totals the stored debits per category between startDate and endDate.
func (s *budgetService) CategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	return s.transactionRepo.GetCategorySummary(userID, startDate, endDate)
}
