package handler

import (
	"errors"
	"net/http"

	"github.com/artenepo/inventory-manager/internal/shop/query"
	"github.com/artenepo/inventory-manager/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the daily sold report and the 30-day analytics.
type ReportHandler struct {
	report  *service.ReportService
	catalog *service.CatalogService
}

func NewReportHandler(report *service.ReportService, catalog *service.CatalogService) *ReportHandler {
	return &ReportHandler{report: report, catalog: catalog}
}

func (h *ReportHandler) navInto(c *gin.Context, data gin.H) bool {
	nav, err := h.catalog.Nav(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return false
	}
	data["categories"] = nav.Categories
	data["brands"] = nav.Brands
	data["suppliers"] = nav.Suppliers
	return true
}

func (h *ReportHandler) Daily(c *gin.Context) {
	pred, err := query.FromParams(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	report, err := h.report.Daily(pred, c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	data := gin.H{
		"date":         report.Date,
		"items":        report.Items,
		"dates":        report.Dates,
		"total_profit": report.TotalProfit,
	}
	if !h.navInto(c, data) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

func (h *ReportHandler) Analytics(c *gin.Context) {
	pred, err := query.FromParams(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	report, err := h.report.Analytics(pred)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}

	data := gin.H{
		"since":        report.Since,
		"items":        report.Items,
		"total_profit": report.TotalProfit,
	}
	if !h.navInto(c, data) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}
