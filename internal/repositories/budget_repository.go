package repositories

import (
	"errors"
	"fmt"

	"github.com/Swoyesh/FinSense/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

func (r *budgetRepository) CreateBatch(entries []models.BudgetEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to create budget entries: %w", err)
		}
		return nil
	})
}

func (r *budgetRepository) ReplaceMonth(userID uuid.UUID, month string, entries []models.BudgetEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND month = ?", userID, month).
			Delete(&models.BudgetEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear budget month: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to create budget entries: %w", err)
		}
		return nil
	})
}

// GetByUserAndMonth returns the stored plan for one month, largest allocation first
func (r *budgetRepository) GetByUserAndMonth(userID uuid.UUID, month string) ([]models.BudgetEntry, error) {
	var entries []models.BudgetEntry
	if err := r.db.Where("user_id = ? AND month = ?", userID, month).
		Order("allocated DESC, category ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrBudgetNotFound
	}

	return entries, nil
}

func (r *budgetRepository) ListByUser(userID uuid.UUID) ([]models.BudgetEntry, error) {
	var entries []models.BudgetEntry
	if err := r.db.Where("user_id = ?", userID).
		Order("month DESC, allocated DESC, category ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return entries, nil
}

// ListMonths returns the distinct months a user has budgets for, newest first
func (r *budgetRepository) ListMonths(userID uuid.UUID) ([]string, error) {
	var months []string
	if err := r.db.Model(&models.BudgetEntry{}).
		Where("user_id = ?", userID).
		Distinct("month").
		Order("month DESC").
		Pluck("month", &months).Error; err != nil {
		return nil, fmt.Errorf("failed to list budget months: %w", err)
	}
	return months, nil
}

func (r *budgetRepository) DeleteOlderThan(cutoff string) (int64, error) {
	result := r.db.Where("month < ?", cutoff).Delete(&models.BudgetEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune budgets: %w", result.Error)
	}
	return result.RowsAffected, nil
}
