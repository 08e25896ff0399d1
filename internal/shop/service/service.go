package service

import (
	"errors"
	"time"

	"github.com/artenepo/inventory-manager/internal/shop/repository"
)

// Clock supplies the current time. Injected so sold-date stamping and the
// analytics window are deterministic under test.
type Clock func() time.Time

// ErrInvalidDate marks a malformed date parameter; handlers map it to a
// client error.
var ErrInvalidDate = errors.New("invalid date parameter")

// Services bundles the shop business logic.
type Services struct {
	Catalog   *CatalogService
	Sale      *SaleService
	Warehouse *WarehouseService
	Report    *ReportService
}

func NewServices(repos *repository.Repositories, nav *NavCache, clock Clock) *Services {
	if clock == nil {
		clock = time.Now
	}
	return &Services{
		Catalog:   NewCatalogService(repos, nav),
		Sale:      NewSaleService(repos.Item, clock),
		Warehouse: NewWarehouseService(repos.Item, clock),
		Report:    NewReportService(repos.Report, clock),
	}
}
