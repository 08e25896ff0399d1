package service

import (
	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"github.com/artenepo/inventory-manager/internal/shop/repository"
)

// WarehouseService creates stock: one item row per physical unit.
type WarehouseService struct {
	items *repository.ItemRepository
	clock Clock
}

func NewWarehouseService(items *repository.ItemRepository, clock Clock) *WarehouseService {
	return &WarehouseService{items: items, clock: clock}
}

// Cost binds as a pointer: zero-cost stock is valid (such items simply
// derive no price), only an absent parameter fails validation.
type StockRequest struct {
	Amount     int      `json:"amount" form:"amount" binding:"required,gt=0"`
	ProductID  uint     `json:"product__id" form:"product__id" binding:"required"`
	SupplierID uint     `json:"supplier__id" form:"supplier__id" binding:"required"`
	Cost       *float64 `json:"cost" form:"cost" binding:"required"`
}

// Stock inserts Amount unsold items sharing product, supplier and cost.
// Unknown product or supplier ids are rejected by the store's foreign keys.
func (s *WarehouseService) Stock(req StockRequest) ([]entity.Item, error) {
	items := make([]entity.Item, req.Amount)
	for i := range items {
		items[i] = entity.Item{
			ProductID:  req.ProductID,
			SupplierID: req.SupplierID,
			Cost:       *req.Cost,
		}
	}
	if err := s.items.CreateBatch(items, s.clock()); err != nil {
		return nil, err
	}
	return items, nil
}
