package routes

import (
	"dubiqo_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
	PathQuotes  = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/estimate", quoteHandler.Estimate)
		quotes.POST("", quoteHandler.Submit)
		quotes.GET("", quoteHandler.ListQuoteRequests)
		quotes.GET("/:id", quoteHandler.GetQuoteRequest)
	}
}
