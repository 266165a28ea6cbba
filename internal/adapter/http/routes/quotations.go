package routes

import (
	"window_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing       = "/ping"
	PathQuotations = "/quotations"
	PathCatalog    = "/catalog"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/archetypes", catalogHandler.ListArchetypes)
		catalog.GET("/archetypes/:archetype/patterns", catalogHandler.ListPatterns)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:number", quotationHandler.GetQuotation)
		quotations.GET("/:number/totals", quotationHandler.GetTotals)
		quotations.GET("/:number/validation", quotationHandler.Validate)
		quotations.POST("/:number/submit", quotationHandler.Submit)
		quotations.PATCH("/:number/status", quotationHandler.SetStatus)
		quotations.PUT("/:number/active-window", quotationHandler.SetActiveWindow)
		quotations.POST("/:number/pricing/auto", quotationHandler.AutoPopulatePricing)
		quotations.GET("/:number/diagrams", quotationHandler.RenderDiagrams)
	}

	// Window ids accept "active" for the currently selected window.
	windows := quotations.Group("/:number/windows")
	{
		windows.POST("", quotationHandler.AddWindow)
		windows.DELETE("/:window_id", quotationHandler.RemoveWindow)
		windows.POST("/:window_id/duplicate", quotationHandler.DuplicateWindow)
		windows.PATCH("/:window_id/name", quotationHandler.RenameWindow)
		windows.PUT("/:window_id/spec", quotationHandler.UpdateSpec)
		windows.PUT("/:window_id/configuration", quotationHandler.UpdateConfiguration)
		windows.PATCH("/:window_id/pricing", quotationHandler.SetPricingOverride)
		windows.GET("/:window_id/scene", quotationHandler.GetScene)
	}
}
