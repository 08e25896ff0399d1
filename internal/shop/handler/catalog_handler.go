package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/artenepo/inventory-manager/internal/shop/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler manages suppliers, brands, categories and products.
// Deletes are never cascading: a referenced record comes back as a conflict.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid id: " + c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

// respondWrite maps create/update outcomes; a foreign key violation here
// means the request referenced an unknown record.
func respondWrite(c *gin.Context, data interface{}, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "not found"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusBadRequest, gin.H{"code": 10002, "message": "unknown reference"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}

// respondDelete maps delete outcomes; here a foreign key violation is the
// delete protection kicking in.
func respondDelete(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": nil})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "not found"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusConflict, gin.H{"code": 10003, "message": "still referenced, delete blocked"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
	}
}

func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	var req service.CreateSupplierRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	supplier, err := h.catalog.CreateSupplier(c.Request.Context(), req)
	respondWrite(c, supplier, err)
}

func (h *CatalogHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.CreateSupplierRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	supplier, err := h.catalog.UpdateSupplier(c.Request.Context(), id, req)
	respondWrite(c, supplier, err)
}

func (h *CatalogHandler) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondDelete(c, h.catalog.DeleteSupplier(c.Request.Context(), id))
}

func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req service.NamedRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	brand, err := h.catalog.CreateBrand(c.Request.Context(), req)
	respondWrite(c, brand, err)
}

func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.NamedRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	brand, err := h.catalog.UpdateBrand(c.Request.Context(), id, req)
	respondWrite(c, brand, err)
}

func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondDelete(c, h.catalog.DeleteBrand(c.Request.Context(), id))
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req service.NamedRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	category, err := h.catalog.CreateCategory(c.Request.Context(), req)
	respondWrite(c, category, err)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.NamedRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	category, err := h.catalog.UpdateCategory(c.Request.Context(), id, req)
	respondWrite(c, category, err)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondDelete(c, h.catalog.DeleteCategory(c.Request.Context(), id))
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	product, err := h.catalog.CreateProduct(req)
	respondWrite(c, product, err)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	product, err := h.catalog.UpdateProduct(id, req)
	respondWrite(c, product, err)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondDelete(c, h.catalog.DeleteProduct(id))
}
