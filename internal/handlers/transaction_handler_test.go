package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Swoyesh/FinSense/internal/dto"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	handler             *TransactionHandler
	echo                *echo.Echo
	userID              uuid.UUID
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.userID = uuid.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockTransactionRepo)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) listContext(query string) (echo.Context, *httptest.ResponseRecorder) {
	target := fmt.Sprintf("/api/v1/users/%s/transactions", s.userID)
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(s.userID.String())
	return c, rec
}

func (s *TransactionHandlerTestSuite) makeTransactions(n int) []models.Transaction {
	start := time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC)
	transactions := make([]models.Transaction, n)
	for i := 0; i < n; i++ {
		transactions[i] = models.Transaction{
			ID:          uuid.New(),
			UserID:      s.userID,
			Reference:   fmt.Sprintf("TXN-%03d", i),
			OccurredAt:  start.AddDate(0, 0, -i),
			Description: gofakeit.Company(),
			Debit:       decimal.NewFromFloat(float64(10 + i)),
			Category:    models.CategoryGroceries,
			CreatedAt:   start,
		}
	}
	return transactions
}

func decodeTransactionList(body []byte) (dto.ListTransactionsResponse, error) {
	var envelope struct {
		Data dto.ListTransactionsResponse `json:"data"`
	}
	err := json.Unmarshal(body, &envelope)
	return envelope.Data, err
}

// Cursor Encoding/Decoding Tests

func (s *TransactionHandlerTestSuite) TestCursor_RoundTrip() {
	cursor := encodeCursor(40)
	s.NotEmpty(cursor)

	_, err := base64.URLEncoding.DecodeString(cursor)
	s.NoError(err)

	offset, err := decodeCursor(cursor)
	s.NoError(err)
	s.Equal(40, offset)
}

func (s *TransactionHandlerTestSuite) TestDecodeCursor_InvalidCursor() {
	testCases := []struct {
		name   string
		cursor string
	}{
		{"empty cursor", ""},
		{"invalid base64", "not-base64!!!"},
		{"invalid format", base64.URLEncoding.EncodeToString([]byte("invalid"))},
		{"negative offset", base64.URLEncoding.EncodeToString([]byte(`{"offset":-5}`))},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := decodeCursor(tc.cursor)
			s.Error(err)
		})
	}
}

// Pagination Tests

func (s *TransactionHandlerTestSuite) TestListTransactions_FirstPage() {
	transactions := s.makeTransactions(defaultPageLimit + 1)

	s.mockTransactionRepo.EXPECT().
		GetWithFilters(models.TransactionFilters{UserID: s.userID, Limit: defaultPageLimit + 1}).
		Return(transactions, int64(35), nil)

	c, rec := s.listContext("")
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Cache-Control"), "private")

	resp, err := decodeTransactionList(rec.Body.Bytes())
	s.Require().NoError(err)
	s.Len(resp.Transactions, defaultPageLimit)
	s.True(resp.Pagination.HasMore)
	s.Equal(defaultPageLimit, resp.Pagination.Limit)
	s.Equal(int64(35), resp.Pagination.Total)

	offset, err := decodeCursor(resp.Pagination.NextCursor)
	s.NoError(err)
	s.Equal(defaultPageLimit, offset)

	first := resp.Transactions[0]
	s.Equal("TXN-000", first.Reference)
	s.Equal("2024-05-31", first.Date)
	s.Equal("10.00", first.Debit)
	s.Equal("0.00", first.Credit)
	s.Equal(models.CategoryGroceries, first.Category)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_WithCursor() {
	transactions := s.makeTransactions(3)

	s.mockTransactionRepo.EXPECT().
		GetWithFilters(models.TransactionFilters{UserID: s.userID, Offset: 20, Limit: 11}).
		Return(transactions, int64(23), nil)

	c, rec := s.listContext("limit=10&cursor=" + encodeCursor(20))
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	resp, err := decodeTransactionList(rec.Body.Bytes())
	s.Require().NoError(err)
	s.Len(resp.Transactions, 3)
	s.False(resp.Pagination.HasMore)
	s.Empty(resp.Pagination.NextCursor)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_EmptyResults() {
	s.mockTransactionRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(nil, int64(0), nil)

	c, rec := s.listContext("")
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	resp, err := decodeTransactionList(rec.Body.Bytes())
	s.Require().NoError(err)
	s.NotNil(resp.Transactions)
	s.Empty(resp.Transactions)
	s.False(resp.Pagination.HasMore)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_MaxLimit() {
	s.mockTransactionRepo.EXPECT().
		GetWithFilters(models.TransactionFilters{UserID: s.userID, Limit: maxPageLimit + 1}).
		Return(nil, int64(0), nil)

	c, rec := s.listContext("limit=500")
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	resp, err := decodeTransactionList(rec.Body.Bytes())
	s.Require().NoError(err)
	s.Equal(maxPageLimit, resp.Pagination.Limit)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Filters() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	s.mockTransactionRepo.EXPECT().
		GetWithFilters(models.TransactionFilters{
			UserID:     s.userID,
			StartDate:  &start,
			EndDate:    &end,
			Category:   models.CategoryDining,
			DebitsOnly: true,
			Limit:      defaultPageLimit + 1,
		}).
		Return(nil, int64(0), nil)

	c, rec := s.listContext("start_date=2024-03-01&end_date=2024-03-31&category=Dining%20%26%20Food&debits_only=true")
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidQuery() {
	testCases := []struct {
		name  string
		query string
	}{
		{"bad start date", "start_date=01-03-2024"},
		{"bad end date", "end_date=2024/03/31"},
		{"inverted range", "start_date=2024-04-01&end_date=2024-03-01"},
		{"bad debits_only", "debits_only=maybe"},
		{"non-numeric limit", "limit=ten"},
		{"zero limit", "limit=0"},
		{"bad cursor", "cursor=%21%21"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.listContext(tc.query)
			s.NoError(s.handler.ListTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", decodeError(rec.Body.Bytes()).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidUserID() {
	c, rec := s.listContext("")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", decodeError(rec.Body.Bytes()).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_StoreFailure() {
	s.mockTransactionRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(nil, int64(0), errors.New("connection reset"))

	c, rec := s.listContext("")
	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", decodeError(rec.Body.Bytes()).Error.Code)
}
