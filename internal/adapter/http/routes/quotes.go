package routes

import (
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/handlers"
	"github.com/alexVinter/fire-dynamics1/internal/adapter/http/middleware"
	"github.com/alexVinter/fire-dynamics1/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathRules  = "/rules"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.POST("/:id/calculate", h.CalculateQuote)
		quotes.GET("/:id/calc-runs", h.ListCalcRuns)
		quotes.GET("/:id/result", h.GetResultLines)
		quotes.PATCH("/:id/result/:line_id", h.PatchResultLine)
		quotes.POST("/:id/export/xlsx", h.ExportXLSX)

		quotes.POST("/:id/status",
			middleware.RequireRole(entities.RoleManager, entities.RoleAdmin),
			h.ChangeStatus,
		)
		quotes.POST("/:id/warehouse/confirm",
			middleware.RequireRole(entities.RoleWarehouse, entities.RoleAdmin),
			h.WarehouseDecision,
		)
	}
}

func addRuleRoutes(rg *gin.RouterGroup, h *handlers.RuleHandler) {
	rules := rg.Group(PathRules, middleware.RequireRole(entities.RoleAdmin))
	{
		rules.POST("", h.CreateRule)
		rules.GET("", h.ListRules)
	}
}
