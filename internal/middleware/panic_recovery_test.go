package middleware

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Swoyesh/FinSense/internal/errors"
	"github.com/Swoyesh/FinSense/internal/forecast"
	"github.com/Swoyesh/FinSense/internal/handlers"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const forecastBody = `{"income": 2000, "transactions": [{"date": "2024-01-05", "debit": 120, "category": "Travel"}]}`

type PanicRecoveryTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	echo          *echo.Echo
	planner       *service_mocks.MockBudgetPlannerServiceInterface
	logs          *bytes.Buffer
	defaultLogger *slog.Logger
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.defaultLogger = slog.Default()
	s.logs = &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewJSONHandler(s.logs, nil)))

	s.ctrl = gomock.NewController(s.T())
	s.planner = service_mocks.NewMockBudgetPlannerServiceInterface(s.ctrl)
	budget := handlers.NewBudgetHandler(
		service_mocks.NewMockBudgetServiceInterface(s.ctrl),
		s.planner,
		service_mocks.NewMockCategoryServiceInterface(s.ctrl),
		1<<20,
		0,
	)

	s.echo = echo.New()
	s.echo.Validator = handlers.NewValidator()
	s.echo.Use(RequestID())
	s.echo.Use(PanicRecovery())
	s.echo.Use(SecurityHeaders())
	s.echo.POST("/api/v1/forecast", budget.Forecast)
}

func (s *PanicRecoveryTestSuite) TearDownTest() {
	s.ctrl.Finish()
	slog.SetDefault(s.defaultLogger)
}

func (s *PanicRecoveryTestSuite) postForecast(traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forecast", strings.NewReader(forecastBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

// panicRecord returns the first "Panic recovered" entry written to the logs.
func (s *PanicRecoveryTestSuite) panicRecord() map[string]interface{} {
	scanner := bufio.NewScanner(s.logs)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		var record map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			continue
		}
		if record["msg"] == "Panic recovered" {
			return record
		}
	}
	s.FailNow("no panic was logged", s.logs.String())
	return nil
}

func (s *PanicRecoveryTestSuite) TestPanicInForecastHandler() {
	s.planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), 2000.0, 0.0).
		DoAndReturn(func(_ context.Context, _ []forecast.Record, _, _ float64) (*models.BudgetPlan, error) {
			var budget map[string]float64
			budget["Travel"] = 120
			return nil, nil
		})

	rec := s.postForecast("forecast-run-42")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("forecast-run-42", rec.Header().Get(TraceIDHeader))
	// headers set before the panic survive on the error response
	s.Equal("default-src 'none'; frame-ancestors 'none'", rec.Header().Get("Content-Security-Policy"))

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.Equal("forecast-run-42", resp.Error.TraceID)
	s.NotContains(rec.Body.String(), "nil map")

	record := s.panicRecord()
	s.Equal("ERROR", record["level"])
	s.Equal("forecast-run-42", record["trace_id"])
	s.Equal("/api/v1/forecast", record["path"])
	s.Equal(http.MethodPost, record["method"])
	s.Contains(record["panic"], "assignment to entry in nil map")
	s.Contains(record["stack_trace"], "(*BudgetHandler).Forecast")
}

func (s *PanicRecoveryTestSuite) TestPanicWithoutRequestID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(forecast.ErrNoRows)
	})

	// the named return carries the written response, not the panic
	s.NoError(handler(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unknown", resp.Error.TraceID)

	// outside RequestID the default logger is used
	record := s.panicRecord()
	s.Equal("unknown", record["trace_id"])
	s.Contains(record["panic"], forecast.ErrNoRows.Error())
}

func (s *PanicRecoveryTestSuite) TestHandlerErrorPassesThrough() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	want := echo.NewHTTPError(http.StatusTeapot, "short and stout")
	handler := PanicRecovery()(func(c echo.Context) error {
		return want
	})

	s.Same(want, handler(c))
	s.False(c.Response().Committed)
	s.Empty(s.logs.String())
}

func (s *PanicRecoveryTestSuite) TestSuccessfulForecastIsUntouched() {
	s.planner.EXPECT().
		Plan(gomock.Any(), gomock.Any(), 2000.0, 0.0).
		Return(&models.BudgetPlan{InsufficientHistory: true, Budget: map[string]float64{}}, nil)

	rec := s.postForecast("")

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(s.logs.String(), "Panic recovered")
}
