package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Swoyesh/FinSense/internal/models"
)

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.Transaction{}))
	assert.True(t, db.Migrator().HasTable(&models.BudgetEntry{}))
	assert.NoError(t, db.HealthCheck())
}

func TestCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.BudgetEntry{}, "idx_budget_user_month"))
}

func TestTransaction_RollsBack(t *testing.T) {
	db := NewTestDB(t)
	defer db.Cleanup()

	userID := uuid.New()
	err := db.Transaction(func(tx *gorm.DB) error {
		entry := &models.BudgetEntry{
			UserID:    userID,
			Month:     "2024-04",
			Category:  models.CategoryDining,
			Allocated: decimal.NewFromInt(1000),
			Forecast:  decimal.NewFromInt(1000),
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		// second row fails validation and aborts the whole transaction
		return tx.Create(&models.Transaction{UserID: userID, OccurredAt: time.Now()}).Error
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.BudgetEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}
