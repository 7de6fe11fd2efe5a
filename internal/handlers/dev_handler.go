package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Swoyesh/FinSense/internal/dto"
	"github.com/Swoyesh/FinSense/internal/errors"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/repositories"
	"github.com/Swoyesh/FinSense/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultHistoryMonths = 6
	maxHistoryMonths     = 36
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.HistoryGeneratorInterface
	now             func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.HistoryGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
		now:             time.Now,
	}
}

// GenerateHistory stores synthetic categorized history for a user
//
// Method: POST /api/v1/dev/users/:userId/generate-history
// Environment: Development only
//
// Query parameters:
//   - months: months of history ending with the current month (default: 6, max: 36)
//
// Success Response: 200 OK with dto.GenerateHistoryResponse in data
//
// Error Responses:
//   - 400: Invalid user ID
//   - 500: Internal server error
func (h *DevHandler) GenerateHistory(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	months := clamp(getIntQueryParam(c, "months", defaultHistoryMonths), 1, maxHistoryMonths)

	transactions := h.generator.GenerateMonths(userID, h.now().UTC(), months)
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.GenerateHistoryResponse{
		Message:             "history generated successfully",
		TransactionsCreated: len(transactions),
		Months:              months,
	}
	if len(transactions) > 0 {
		resp.Start = transactions[0].OccurredAt.Format(queryDateLayout)
		resp.End = transactions[len(transactions)-1].OccurredAt.Format(queryDateLayout)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}

// ClearHistory removes every stored transaction of a user
//
// Method: DELETE /api/v1/dev/users/:userId/transactions
// Environment: Development only
//
// Success Response: 200 OK
//   - transactions_deleted: Number of transactions deleted
func (h *DevHandler) ClearHistory(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	deleted, err := h.transactionRepo.DeleteByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("deleted %d transactions", deleted),
		Data:    map[string]int64{"transactions_deleted": deleted},
	})
}

// MerchantPool lists the merchants the generator draws from
//
// Method: GET /api/v1/dev/merchants
func (h *DevHandler) MerchantPool(c echo.Context) error {
	pool := h.generator.GetMerchantPool()

	byCategory := make(map[string][]string)
	for _, m := range pool {
		byCategory[m.Category] = append(byCategory[m.Category], m.Name)
	}
	for _, category := range models.SpendingCategories() {
		if _, ok := byCategory[category]; !ok {
			byCategory[category] = []string{}
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: byCategory})
}
