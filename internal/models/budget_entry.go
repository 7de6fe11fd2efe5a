package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetMonthLayout is the format of BudgetEntry.Month.
const BudgetMonthLayout = "2006-01"

var ErrInvalidBudgetMonth = errors.New("budget month must be formatted as YYYY-MM")

// BudgetEntry is one persisted category line of a monthly budget plan.
type BudgetEntry struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_budget_user_month" json:"user_id"`
	Month     string          `gorm:"type:varchar(7);not null;index:idx_budget_user_month" json:"month"`
	Category  string          `gorm:"type:varchar(50);not null" json:"category"`
	Allocated decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"allocated"`
	Forecast  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"forecast"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for BudgetEntry
func (b *BudgetEntry) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	return b.Validate()
}

// Validate validates the budget entry fields
func (b *BudgetEntry) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if _, err := time.Parse(BudgetMonthLayout, b.Month); err != nil {
		return ErrInvalidBudgetMonth
	}

	if b.Category == "" {
		return errors.New("budget category is required")
	}

	if b.Allocated.IsNegative() || b.Forecast.IsNegative() {
		return errors.New("budget amounts must not be negative")
	}

	return nil
}

// TableName returns the table name for BudgetEntry
func (b *BudgetEntry) TableName() string {
	return "budgets"
}

// FormatBudgetMonth renders t as a BudgetEntry month key.
func FormatBudgetMonth(t time.Time) string {
	return t.Format(BudgetMonthLayout)
}
