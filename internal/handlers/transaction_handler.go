package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Swoyesh/FinSense/internal/dto"
	"github.com/Swoyesh/FinSense/internal/errors"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/repositories"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	cacheTTL         = 5 * time.Minute
)

// TransactionHandler serves the stored statement history
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
	}
}

// cursorData is the position a pagination cursor resumes from
type cursorData struct {
	Offset int `json:"offset"`
}

func encodeCursor(offset int) string {
	jsonData, err := json.Marshal(cursorData{Offset: offset})
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(jsonData)
}

func decodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, fmt.Errorf("empty cursor")
	}

	jsonData, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	var data cursorData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return 0, fmt.Errorf("invalid cursor format: %w", err)
	}
	if data.Offset < 0 {
		return 0, fmt.Errorf("invalid cursor offset %d", data.Offset)
	}

	return data.Offset, nil
}

// ListTransactions pages through a user's stored transactions, newest first
//
// Method: GET /api/v1/users/:userId/transactions
//
// Query parameters:
//   - cursor: next_cursor of the previous page
//   - limit: page size, default 20, at most 100
//   - start_date, end_date: YYYY-MM-DD, end_date inclusive
//   - category: exact category label
//   - debits_only: true to drop credit rows
//
// Success Response: 200 OK with dto.ListTransactionsResponse in data
//
// Error Responses:
//   - 400 VALIDATION_005: malformed user ID
//   - 400 VALIDATION_001: malformed filter, limit or cursor
//   - 500 SYSTEM_001: storage failure
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	filters.UserID = userID

	pagination, err := parsePaginationParams(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if pagination.Cursor != "" {
		offset, err := decodeCursor(pagination.Cursor)
		if err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid cursor"))
		}
		filters.Offset = offset
	}
	// one extra row tells whether another page exists
	filters.Limit = pagination.Limit + 1

	transactions, total, err := h.transactionRepo.GetWithFilters(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	var nextCursor string
	hasMore := false

	if len(transactions) > pagination.Limit {
		hasMore = true
		transactions = transactions[:pagination.Limit]
		nextCursor = encodeCursor(filters.Offset + pagination.Limit)
	}

	response := dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(transactions),
		Pagination: dto.PaginationInfo{
			HasMore:    hasMore,
			NextCursor: nextCursor,
			Limit:      pagination.Limit,
			Total:      total,
		},
	}

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// parseTransactionFilters reads the date, category and debit filters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.Parse(queryDateLayout, startDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.Parse(queryDateLayout, endDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		endOfDay := endDate.Add(24*time.Hour - time.Second)
		filters.EndDate = &endOfDay
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return filters, fmt.Errorf("start_date must not be after end_date")
	}

	filters.Category = c.QueryParam("category")

	if debitsOnly := c.QueryParam("debits_only"); debitsOnly != "" {
		value, err := strconv.ParseBool(debitsOnly)
		if err != nil {
			return filters, fmt.Errorf("debits_only must be true or false")
		}
		filters.DebitsOnly = value
	}

	return filters, nil
}

// parsePaginationParams parses pagination parameters from query string
func parsePaginationParams(c echo.Context) (dto.PaginationParams, error) {
	params := dto.PaginationParams{
		Limit:  defaultPageLimit,
		Cursor: c.QueryParam("cursor"),
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter")
		}

		if limit < 1 {
			return params, fmt.Errorf("limit must be at least 1")
		}

		if limit > maxPageLimit {
			limit = maxPageLimit
		}

		params.Limit = limit
	}

	return params, nil
}

func toTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	result := make([]dto.TransactionResponse, 0, len(transactions))

	for i := range transactions {
		txn := &transactions[i]
		result = append(result, dto.TransactionResponse{
			ID:          txn.ID,
			Reference:   txn.Reference,
			Date:        txn.OccurredAt.Format(queryDateLayout),
			Description: txn.Description,
			Debit:       txn.Debit.StringFixed(2),
			Credit:      txn.Credit.StringFixed(2),
			Channel:     txn.Channel,
			Category:    txn.Category,
			CreatedAt:   txn.CreatedAt,
		})
	}

	return result
}
