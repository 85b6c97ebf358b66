package handlers

import (
	"net/http"

	response "dubiqo_quotes/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog response.CatalogResponse
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{catalog: response.NewCatalogResponse()}
}

// GetCatalog godoc
// @Summary      Quote form options
// @Description  Project types with base prices, page options, add-on features and urgencies.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
