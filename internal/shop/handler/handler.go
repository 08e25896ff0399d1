package handler

import "github.com/artenepo/inventory-manager/internal/shop/service"

// Handlers is the shop HTTP handler set.
type Handlers struct {
	Sale      *SaleHandler
	Warehouse *WarehouseHandler
	Report    *ReportHandler
	Catalog   *CatalogHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Sale:      NewSaleHandler(services.Sale, services.Catalog),
		Warehouse: NewWarehouseHandler(services.Warehouse, services.Catalog),
		Report:    NewReportHandler(services.Report, services.Catalog),
		Catalog:   NewCatalogHandler(services.Catalog),
	}
}
