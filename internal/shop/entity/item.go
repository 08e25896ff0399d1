package entity

import (
	"math"
	"time"
)

// Item statuses derived from the selling price.
const (
	ItemStatusAvailable = "Available"
	ItemStatusSold      = "Sold"
)

// Item is one physical unit of stock. CreatedDate is re-stamped on every
// full save while UpdatedDate is stamped once at creation; the sale flow
// updates selected columns only, so stock ordering stays stable.
type Item struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CreatedDate  time.Time  `json:"created_date" gorm:"index;not null"`
	UpdatedDate  time.Time  `json:"updated_date" gorm:"not null"`
	ProductID    uint       `json:"product_id" gorm:"not null;index"`
	Product      *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	SupplierID   uint       `json:"supplier_id" gorm:"not null;index"`
	Supplier     *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
	Cost         float64    `json:"cost"`
	SellingPrice *float64   `json:"selling_price"`
	SoldDate     *time.Time `json:"sold_date"`
}

func (Item) TableName() string {
	return "item"
}

// Sold reports whether a non-zero selling price is set. A zero selling price
// counts as not sold, matching the historical behavior.
func (i *Item) Sold() bool {
	return i.SellingPrice != nil && *i.SellingPrice != 0
}

func (i *Item) Status() string {
	if i.Sold() {
		return ItemStatusSold
	}
	return ItemStatusAvailable
}

// Price computes the asking price from cost and the product margin, rounded
// to the nearest integer. A zero cost or zero margin yields no price.
func (i *Item) Price(margin float64) *float64 {
	if margin == 0 || i.Cost == 0 {
		return nil
	}
	price := math.Round(i.Cost + i.Cost/100*margin)
	return &price
}

// Profit is selling price minus cost, nil while unsold. Can be negative.
func (i *Item) Profit() *float64 {
	if !i.Sold() {
		return nil
	}
	profit := *i.SellingPrice - i.Cost
	return &profit
}
