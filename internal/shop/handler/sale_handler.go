package handler

import (
	"net/http"

	"github.com/artenepo/inventory-manager/internal/shop/query"
	"github.com/artenepo/inventory-manager/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// SaleHandler serves the sale view: the filtered product listing and the
// sell operation.
type SaleHandler struct {
	sale    *service.SaleService
	catalog *service.CatalogService
}

func NewSaleHandler(sale *service.SaleService, catalog *service.CatalogService) *SaleHandler {
	return &SaleHandler{sale: sale, catalog: catalog}
}

// listing resolves the shared filter parameters into the product listing
// plus nav context carried by every shop view.
func listing(c *gin.Context, catalog *service.CatalogService) (gin.H, bool) {
	params := c.Request.URL.Query()
	pred, err := query.FromParams(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return nil, false
	}

	products, err := catalog.ListProducts(pred)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return nil, false
	}

	nav, err := catalog.Nav(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return nil, false
	}

	data := gin.H{
		"products":   products,
		"categories": nav.Categories,
		"brands":     nav.Brands,
		"suppliers":  nav.Suppliers,
	}
	if search := params.Get(query.ParamSearch); search != "" {
		data["search"] = search
	}
	return data, true
}

func (h *SaleHandler) List(c *gin.Context) {
	data, ok := listing(c, h.catalog)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

// Sell marks up to `amount` oldest unsold items of a product as sold, then
// responds like the listing so the client can re-render in place.
func (h *SaleHandler) Sell(c *gin.Context) {
	var req service.SellRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid sale request: " + err.Error()})
		return
	}

	sold, err := h.sale.Sell(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	data, ok := listing(c, h.catalog)
	if !ok {
		return
	}
	data["sold"] = len(sold)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}
