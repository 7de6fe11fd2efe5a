package handlers

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Swoyesh/FinSense/internal/dto"
	"github.com/Swoyesh/FinSense/internal/errors"
	"github.com/Swoyesh/FinSense/internal/forecast"
	"github.com/Swoyesh/FinSense/internal/models"
	"github.com/Swoyesh/FinSense/internal/repositories"
	"github.com/Swoyesh/FinSense/internal/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BudgetHandler serves the forecast and budget endpoints
type BudgetHandler struct {
	budgetService   services.BudgetServiceInterface
	planner         services.BudgetPlannerServiceInterface
	categoryService services.CategoryServiceInterface
	maxUploadBytes  int64
	timeout         time.Duration
}

// NewBudgetHandler creates a new budget handler. A zero timeout leaves
// planning bounded only by the request context.
func NewBudgetHandler(
	budgetService services.BudgetServiceInterface,
	planner services.BudgetPlannerServiceInterface,
	categoryService services.CategoryServiceInterface,
	maxUploadBytes int64,
	timeout time.Duration,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService:   budgetService,
		planner:         planner,
		categoryService: categoryService,
		maxUploadBytes:  maxUploadBytes,
		timeout:         timeout,
	}
}

// PredictBudget plans next month's budget from a JSON history and stores both
//
// Method: POST /api/v1/users/:userId/budgets/predict
//
// Request body: dto.PredictBudgetRequest
//
// Success Response: 200 OK with dto.BudgetPlanResponse in data and notices in meta
//
// Error Responses:
//   - 400: invalid user ID, body or transaction rows
//   - 422: no debit in any category
//   - 503: forecasting timed out
//   - 500: internal server error
func (h *BudgetHandler) PredictBudget(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	req, records, err := h.bindPredictRequest(c)
	if err != nil {
		return err
	}
	if records == nil {
		return nil
	}

	ctx, cancel := h.planContext(c)
	defer cancel()

	plan, err := h.budgetService.PredictAndStore(ctx, userID, records, req.Income, req.TargetSavings)
	if err != nil {
		return h.sendPlanError(c, err)
	}

	return sendPlan(c, plan)
}

// PredictBudgetUpload plans from one or more uploaded statement files
//
// Method: POST /api/v1/users/:userId/budgets/predict/upload
//
// Multipart form:
//   - file: CSV or XLSX statement with Date Time, Dr., Cr. and Category
//     columns; repeat the part to plan from several statements at once
//   - income, target_savings: amounts
//   - categorize: "true" to label rows the Category column leaves blank
//
// Success Response: 200 OK with dto.BudgetPlanResponse in data
//
// Error Responses:
//   - 400: invalid user ID, amounts, or unreadable statement
//   - 422: no debit in any category
//   - 500: internal server error
func (h *BudgetHandler) PredictBudgetUpload(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	amounts := dto.PlanFromHistoryRequest{}
	if amounts.Income, err = parseFormAmount(c, "income"); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if amounts.TargetSavings, err = parseFormAmount(c, "target_savings"); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&amounts); err != nil {
		return SendValidationError(c, err)
	}

	var opts []forecast.TableOption
	if c.FormValue("categorize") == "true" {
		opts = append(opts, forecast.WithCategorizer(h.categoryService))
	}

	records, err := h.readStatements(c, opts)
	if err != nil {
		return err
	}
	if records == nil {
		return nil
	}

	ctx, cancel := h.planContext(c)
	defer cancel()

	plan, err := h.budgetService.PredictAndStore(ctx, userID, records, amounts.Income, amounts.TargetSavings)
	if err != nil {
		return h.sendPlanError(c, err)
	}

	return sendPlan(c, plan)
}

// Forecast plans from a JSON history without storing anything
//
// Method: POST /api/v1/forecast
//
// Request body: dto.PredictBudgetRequest
//
// Success Response: 200 OK with dto.BudgetPlanResponse in data
func (h *BudgetHandler) Forecast(c echo.Context) error {
	req, records, err := h.bindPredictRequest(c)
	if err != nil {
		return err
	}
	if records == nil {
		return nil
	}

	ctx, cancel := h.planContext(c)
	defer cancel()

	plan, err := h.planner.Plan(ctx, records, req.Income, req.TargetSavings)
	if err != nil {
		return h.sendPlanError(c, err)
	}

	return sendPlan(c, plan)
}

// PlanFromHistory plans from the transactions already stored for the user
//
// Method: POST /api/v1/users/:userId/budgets/plan
//
// Request body: dto.PlanFromHistoryRequest
//
// Error Responses:
//   - 422: nothing stored for the user
func (h *BudgetHandler) PlanFromHistory(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	var req dto.PlanFromHistoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	ctx, cancel := h.planContext(c)
	defer cancel()

	plan, err := h.budgetService.PlanFromHistory(ctx, userID, req.Income, req.TargetSavings)
	if err != nil {
		return h.sendPlanError(c, err)
	}

	return sendPlan(c, plan)
}

// ListBudgets returns stored budget rows
//
// Method: GET /api/v1/users/:userId/budgets
//
// Query parameters:
//   - month: YYYY-MM; every stored month when absent
//
// Success Response: 200 OK with dto.ListBudgetsResponse in data
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	entries, err := h.budgetService.ListBudgets(userID, c.QueryParam("month"))
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidMonth) {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	months, err := h.budgetService.ListMonths(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListBudgetsResponse{
			Budgets: dto.NewBudgetEntryResponses(entries),
			Months:  months,
		},
	})
}

// ExportBudget downloads a stored month as an xlsx workbook
//
// Method: GET /api/v1/users/:userId/budgets/:month/export
//
// Success Response: 200 OK, budget_<month>.xlsx
//
// Error Responses:
//   - 400: invalid user ID or month
//   - 404: nothing stored for the month
//   - 500: workbook could not be written
func (h *BudgetHandler) ExportBudget(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	month := c.Param("month")

	var buf bytes.Buffer
	if err := h.budgetService.ExportBudgetXLSX(userID, month, &buf); err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidMonth):
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		case stderrors.Is(err, repositories.ErrBudgetNotFound):
			return SendError(c, errors.BudgetNotFound, errors.WithDetails("no budget stored for "+month))
		default:
			c.Logger().Error(err)
			return SendError(c, errors.BudgetExportFailed)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "budget_"+month+".xlsx"))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// CategorySummary totals stored debits per category
//
// Method: GET /api/v1/users/:userId/transactions/summary
//
// Query parameters:
//   - start_date, end_date: YYYY-MM-DD; the last 90 days when absent
func (h *BudgetHandler) CategorySummary(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID, errors.WithDetails(err.Error()))
	}

	now := time.Now().UTC()
	endDate, err := getDateQueryParam(c, "end_date", now)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	startDate, err := getDateQueryParam(c, "start_date", endDate.AddDate(0, 0, -90))
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if startDate.After(endDate) {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date must not be after end_date"))
	}

	summaries, err := h.budgetService.CategorySummary(userID, startDate, endDate)
	if err != nil {
		return SendSystemError(c, err)
	}

	data := make([]dto.CategorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		data = append(data, dto.CategorySummaryResponse{
			Category:         s.Category,
			TransactionCount: s.TransactionCount,
			TotalAmount:      s.TotalAmount.StringFixed(2),
			AverageAmount:    s.AverageAmount.StringFixed(2),
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: data})
}

// bindPredictRequest binds and validates a predict body. On failure the
// error response has already been written and records is nil.
func (h *BudgetHandler) bindPredictRequest(c echo.Context) (*dto.PredictBudgetRequest, []forecast.Record, error) {
	var req dto.PredictBudgetRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return nil, nil, SendValidationError(c, err)
	}

	var categorizer forecast.Categorizer
	if req.Categorize {
		categorizer = h.categoryService
	}

	records, err := toRecords(req.Transactions, categorizer)
	if err != nil {
		return nil, nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	return &req, records, nil
}

// readStatements concatenates the records of every "file" part in upload
// order. A nil slice with a nil error means a response was already sent.
func (h *BudgetHandler) readStatements(c echo.Context, opts []forecast.TableOption) ([]forecast.Record, error) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["file"]) == 0 {
		return nil, SendError(c, errors.ValidationRequiredField, errors.WithDetails("file is required"))
	}

	records := []forecast.Record{}
	for _, fileHeader := range form.File["file"] {
		if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
			return nil, SendError(c, errors.ValidationInvalidFile,
				errors.WithDetails(fmt.Sprintf("%s exceeds %d bytes", fileHeader.Filename, h.maxUploadBytes)))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, SendError(c, errors.ValidationInvalidFile, errors.WithDetails(err.Error()))
		}
		parsed, err := forecast.ReadStatement(fileHeader.Filename, file, opts...)
		file.Close()
		if err != nil {
			detail := fmt.Sprintf("%s: %s", fileHeader.Filename, err.Error())
			var schemaErr *forecast.SchemaError
			if stderrors.As(err, &schemaErr) {
				return nil, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(detail))
			}
			return nil, SendError(c, errors.ValidationInvalidFile, errors.WithDetails(detail))
		}
		records = append(records, parsed...)
	}
	return records, nil
}

func (h *BudgetHandler) planContext(c echo.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request().Context())
	}
	return context.WithTimeout(c.Request().Context(), h.timeout)
}

func (h *BudgetHandler) sendPlanError(c echo.Context, err error) error {
	var schemaErr *forecast.SchemaError
	switch {
	case stderrors.As(err, &schemaErr):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	case stderrors.Is(err, forecast.ErrNoRows), stderrors.Is(err, services.ErrNoTransactions):
		return SendError(c, errors.BudgetNoSpendingData, errors.WithDetails(err.Error()))
	case stderrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.ForecastTimeout)
	default:
		return SendSystemError(c, err)
	}
}

// toRecords converts request rows. With a categorizer, rows without a
// category are labelled from their description.
func toRecords(inputs []dto.TransactionInput, categorizer forecast.Categorizer) ([]forecast.Record, error) {
	records := make([]forecast.Record, 0, len(inputs))
	for i, in := range inputs {
		date, err := forecast.ParseDate(strings.TrimSpace(in.Date))
		if err != nil {
			return nil, fmt.Errorf("transactions[%d]: %w", i, err)
		}

		category := strings.TrimSpace(in.Category)
		if category == "" && categorizer != nil {
			category = categorizer.Categorize(in.Description)
		}

		records = append(records, forecast.Record{
			Date:        date,
			Reference:   in.Reference,
			Description: in.Description,
			Debit:       in.Debit,
			Credit:      in.Credit,
			Channel:     in.Channel,
			Category:    category,
		})
	}
	return records, nil
}

func parseFormAmount(c echo.Context, name string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return value, nil
}

// sendPlan writes a plan with its informational notices
func sendPlan(c echo.Context, plan *models.BudgetPlan) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewBudgetPlanResponse(plan),
		Meta: planMeta(plan),
	})
}

// planMeta returns nil when the plan carries no notices so that meta is omitted.
func planMeta(plan *models.BudgetPlan) interface{} {
	var notices []errors.Notice

	if plan.InsufficientHistory {
		notices = append(notices, errors.NewNotice(errors.BudgetInsufficientHistory,
			fmt.Sprintf("%d month(s) of history provided", len(plan.Months))))
	}

	if len(plan.Failures) > 0 {
		details := make([]string, 0, len(plan.Failures))
		for _, f := range plan.Failures {
			details = append(details, f.Category+": "+f.Reason)
		}
		notices = append(notices, errors.NewNotice(errors.ForecastModelFitFailed, details...))
	}

	if plan.Unresolved() {
		notices = append(notices, errors.NewNotice(errors.BudgetUnresolvedDeficit,
			fmt.Sprintf("residual %.2f after %d passes", plan.Residual, plan.Passes)))
	}

	if len(notices) == 0 {
		return nil
	}
	return &dto.PlanMeta{Notices: notices}
}
