package service

import (
	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"github.com/artenepo/inventory-manager/internal/shop/repository"
)

// SaleService marks stocked items as sold, oldest stock first.
type SaleService struct {
	items *repository.ItemRepository
	clock Clock
}

func NewSaleService(items *repository.ItemRepository, clock Clock) *SaleService {
	return &SaleService{items: items, clock: clock}
}

// Price binds as a pointer: an explicit zero is a valid selling price,
// only an absent parameter fails validation.
type SellRequest struct {
	Amount    int      `json:"amount" form:"amount" binding:"required,gt=0"`
	ProductID uint     `json:"product__id" form:"product__id" binding:"required"`
	Price     *float64 `json:"price" form:"price" binding:"required"`
}

// Sell sets the selling price on up to Amount of the product's oldest unsold
// items. Fewer in stock than requested is not an error: whatever is there
// gets sold. Returns the items actually sold.
//
// The candidate read and the per-item updates are not serialized here;
// concurrent sales of the same product rely on the store's isolation level.
func (s *SaleService) Sell(req SellRequest) ([]entity.Item, error) {
	items, err := s.items.OldestUnsold(req.ProductID, req.Amount)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	for i := range items {
		if err := s.items.MarkSold(&items[i], *req.Price, now); err != nil {
			return nil, err
		}
	}
	return items, nil
}
