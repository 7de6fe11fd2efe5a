package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount     = errors.New("transaction amounts must not be negative")
	ErrMissingCategory   = errors.New("transaction category is required")
	ErrMissingOccurredAt = errors.New("transaction date is required")
)

// Transaction is one classified statement row. Debit holds money leaving the
// account and is zero for credits.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Reference   string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	Description string          `gorm:"type:text" json:"description"`
	Debit       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"debit"`
	Credit      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"credit"`
	Channel     string          `gorm:"type:varchar(50)" json:"channel,omitempty"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Reference == "" {
		t.Reference = GenerateTransactionReference()
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.OccurredAt.IsZero() {
		return ErrMissingOccurredAt
	}

	if t.Debit.IsNegative() || t.Credit.IsNegative() {
		return ErrInvalidAmount
	}

	if t.Category == "" {
		return ErrMissingCategory
	}

	if len(t.Category) > 50 {
		return errors.New("category code too long")
	}

	return nil
}

// IsDebit reports whether the row moved money out of the account.
func (t *Transaction) IsDebit() bool {
	return t.Debit.IsPositive()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}
