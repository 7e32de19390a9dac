package api

import (
	"errors"
	"net/http"

	reqdto "fuelstation/internal/handler/dto/request"
	resdto "fuelstation/internal/handler/dto/response"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/commands"
	"fuelstation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries    queries.CatalogQueries
	inventoryCommands commands.InventoryCommands
}

func NewCatalogHandler(
	catalogQueries queries.CatalogQueries,
	inventoryCommands commands.InventoryCommands,
) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries:    catalogQueries,
		inventoryCommands: inventoryCommands,
	}
}

// @Summary List columns
// @Description List fuel columns with the fuels each one offers
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ColumnResponse
// @Router /columns [get]
func (h *CatalogHandler) ListColumns(c *gin.Context) {
	columnViews, err := h.catalogQueries.ListColumns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromColumnViews(columnViews))
}

// @Summary List fuels
// @Description List the station's fuel catalog with price and stock level
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.FuelResponse
// @Router /fuels [get]
func (h *CatalogHandler) ListFuels(c *gin.Context) {
	fuelViews, err := h.catalogQueries.ListFuels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFuelViews(fuelViews))
}

// @Summary List fuels at column
// @Description List the fuels offered at one column
// @Tags catalog
// @Produce json
// @Param id path int true "Column ID"
// @Success 200 {array} resdto.FuelResponse
// @Failure 400 {object} map[string]string
// @Router /columns/{id}/fuels [get]
func (h *CatalogHandler) ListColumnFuels(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid column ID format",
		})
		return
	}

	fuelViews, err := h.catalogQueries.FuelsOfferedAt(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFuelViews(fuelViews))
}

// @Summary Restock fuel
// @Description Add volume to a fuel's stock and return the new level
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Fuel ID"
// @Param request body reqdto.RestockRequest true "Restock request"
// @Success 200 {object} resdto.RestockResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /fuels/{id}/restock [post]
func (h *CatalogHandler) RestockFuel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid fuel ID format",
		})
		return
	}

	var req reqdto.RestockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	newVolume, err := h.inventoryCommands.Restock(c.Request.Context(), id, req.Volume)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrFuelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Fuel not found",
			})
		case errors.Is(err, errs.ErrInvalidVolume):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Volume must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewRestockResponse(id, newVolume))
}
