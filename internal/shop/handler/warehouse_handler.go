package handler

import (
	"errors"
	"net/http"

	"github.com/artenepo/inventory-manager/internal/shop/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WarehouseHandler serves the stocking view.
type WarehouseHandler struct {
	warehouse *service.WarehouseService
	catalog   *service.CatalogService
}

func NewWarehouseHandler(warehouse *service.WarehouseService, catalog *service.CatalogService) *WarehouseHandler {
	return &WarehouseHandler{warehouse: warehouse, catalog: catalog}
}

func (h *WarehouseHandler) List(c *gin.Context) {
	data, ok := listing(c, h.catalog)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

// Stock creates `amount` unsold items for a product/supplier at a cost, then
// responds like the listing.
func (h *WarehouseHandler) Stock(c *gin.Context) {
	var req service.StockRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid stock request: " + err.Error()})
		return
	}

	created, err := h.warehouse.Stock(req)
	if err != nil {
		// Unknown product/supplier ids surface as FK violations.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10002, "message": "unknown product or supplier"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	data, ok := listing(c, h.catalog)
	if !ok {
		return
	}
	data["stocked"] = len(created)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}
