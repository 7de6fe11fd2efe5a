package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Swoyesh/FinSense/internal/dto"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/repositories/repository_mocks"
	"github.com/Swoyesh/FinSense/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	echo            *echo.Echo
	mockTransaction *repository_mocks.MockTransactionRepositoryInterface
	mockGenerator   *service_mocks.MockHistoryGeneratorInterface
	handler         *DevHandler
	now             time.Time
	userID          uuid.UUID
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockTransaction = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockGenerator = service_mocks.NewMockHistoryGeneratorInterface(s.ctrl)
	s.handler = NewDevHandler(s.mockTransaction, s.mockGenerator)
	s.now = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	s.handler.now = func() time.Time { return s.now }
	s.userID = uuid.New()
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerTestSuite) userContext(method, target, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	return c, rec
}

func (s *DevHandlerTestSuite) transactions(dates ...time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(dates))
	for _, d := range dates {
		out = append(out, models.Transaction{
			ID:          uuid.New(),
			UserID:      s.userID,
			OccurredAt:  d,
			Description: gofakeit.Company(),
			Debit:       decimal.NewFromFloat(gofakeit.Float64Range(100, 2000)).Round(2),
			Credit:      decimal.Zero,
			Category:    models.CategoryGroceries,
		})
	}
	return out
}

func (s *DevHandlerTestSuite) TestGenerateHistory_Defaults() {
	c, rec := s.userContext(http.MethodPost, "/", s.userID.String())

	generated := s.transactions(
		time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 18, 19, 0, 0, 0, time.UTC),
	)
	s.mockGenerator.EXPECT().GenerateMonths(s.userID, s.now, defaultHistoryMonths).Return(generated)
	s.mockTransaction.EXPECT().CreateBatch(generated).Return(nil)

	s.NoError(s.handler.GenerateHistory(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data dto.GenerateHistoryResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Data.TransactionsCreated)
	s.Equal(6, resp.Data.Months)
	s.Equal("2024-01-03", resp.Data.Start)
	s.Equal("2024-06-18", resp.Data.End)
}

func (s *DevHandlerTestSuite) TestGenerateHistory_ClampsMonths() {
	testCases := []struct {
		query  string
		months int
	}{
		{"/?months=120", maxHistoryMonths},
		{"/?months=0", 1},
		{"/?months=abc", defaultHistoryMonths},
		{"/?months=12", 12},
	}

	for _, tc := range testCases {
		s.Run(tc.query, func() {
			c, rec := s.userContext(http.MethodPost, tc.query, s.userID.String())

			s.mockGenerator.EXPECT().GenerateMonths(s.userID, s.now, tc.months).Return(nil)
			s.mockTransaction.EXPECT().CreateBatch(gomock.Nil()).Return(nil)

			s.NoError(s.handler.GenerateHistory(c))
			s.Equal(http.StatusOK, rec.Code)
		})
	}
}

func (s *DevHandlerTestSuite) TestGenerateHistory_InvalidUserID() {
	c, rec := s.userContext(http.MethodPost, "/", "nope")

	s.NoError(s.handler.GenerateHistory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", decodeError(rec.Body.Bytes()).Error.Code)
}

func (s *DevHandlerTestSuite) TestGenerateHistory_StoreFailure() {
	c, rec := s.userContext(http.MethodPost, "/", s.userID.String())

	generated := s.transactions(s.now)
	s.mockGenerator.EXPECT().GenerateMonths(gomock.Any(), gomock.Any(), gomock.Any()).Return(generated)
	s.mockTransaction.EXPECT().CreateBatch(generated).Return(gofakeit.Error())

	s.NoError(s.handler.GenerateHistory(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", decodeError(rec.Body.Bytes()).Error.Code)
}

func (s *DevHandlerTestSuite) TestClearHistory() {
	c, rec := s.userContext(http.MethodDelete, "/", s.userID.String())

	s.mockTransaction.EXPECT().DeleteByUserID(s.userID).Return(int64(42), nil)

	s.NoError(s.handler.ClearHistory(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data    map[string]int64 `json:"data"`
		Message string           `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(42), resp.Data["transactions_deleted"])
	s.Equal("deleted 42 transactions", resp.Message)
}

func (s *DevHandlerTestSuite) TestClearHistory_Failure() {
	c, rec := s.userContext(http.MethodDelete, "/", s.userID.String())

	s.mockTransaction.EXPECT().DeleteByUserID(s.userID).Return(int64(0), gofakeit.Error())

	s.NoError(s.handler.ClearHistory(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *DevHandlerTestSuite) TestMerchantPool() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockGenerator.EXPECT().GetMerchantPool().Return([]models.MerchantInfo{
		{Name: "Bhat-Bhateni", Category: models.CategoryGroceries, Channel: "POS"},
		{Name: "Big Mart", Category: models.CategoryGroceries, Channel: "POS"},
	})

	s.NoError(s.handler.MerchantPool(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data map[string][]string `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal([]string{"Bhat-Bhateni", "Big Mart"}, resp.Data[models.CategoryGroceries])
	for _, category := range models.SpendingCategories() {
		s.Contains(resp.Data, category)
	}
	s.NotContains(resp.Data, models.CategoryIncome)
}
