package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters narrows a user's transaction history query
type TransactionFilters struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	// DebitsOnly drops rows whose debit is zero.
	DebitsOnly bool
	Offset     int
	Limit      int
}
