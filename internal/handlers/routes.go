package handlers

import (
	"github.com/labstack/echo/v4"
)

// Routes holds the handlers mounted by RegisterRoutes. A nil Dev handler
// leaves the development endpoints unmounted.
type Routes struct {
	Health       *HealthCheckHandler
	Budget       *BudgetHandler
	Transactions *TransactionHandler
	Dev          *DevHandler
}

// RegisterRoutes mounts the API on e.
func RegisterRoutes(e *echo.Echo, r Routes) {
	if r.Health != nil {
		e.GET("/health", r.Health.HealthCheck)
	}

	api := e.Group("/api/v1")
	api.POST("/forecast", r.Budget.Forecast)

	users := api.Group("/users/:userId")
	users.POST("/budgets/predict", r.Budget.PredictBudget)
	users.POST("/budgets/predict/upload", r.Budget.PredictBudgetUpload)
	users.POST("/budgets/plan", r.Budget.PlanFromHistory)
	users.GET("/budgets", r.Budget.ListBudgets)
	users.GET("/budgets/:month/export", r.Budget.ExportBudget)
	users.GET("/transactions/summary", r.Budget.CategorySummary)
	users.GET("/transactions", r.Transactions.ListTransactions)

	if r.Dev != nil {
		dev := api.Group("/dev")
		dev.POST("/users/:userId/generate-history", r.Dev.GenerateHistory)
		dev.DELETE("/users/:userId/transactions", r.Dev.ClearHistory)
		dev.GET("/merchants", r.Dev.MerchantPool)
	}
}
