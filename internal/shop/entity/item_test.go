package entity

import (
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func TestItemPrice(t *testing.T) {
	item := Item{Cost: 100}

	if got := item.Price(0); got != nil {
		t.Errorf("zero margin should have no price, got %v", *got)
	}

	zeroCost := Item{Cost: 0}
	if got := zeroCost.Price(50); got != nil {
		t.Errorf("zero cost should have no price, got %v", *got)
	}

	if got := item.Price(50); got == nil || *got != 150 {
		t.Errorf("expected price 150, got %v", got)
	}

	// 33.3 + 3.33 = 36.63, rounded to the nearest integer.
	rounded := Item{Cost: 33.3}
	if got := rounded.Price(10); got == nil || *got != 37 {
		t.Errorf("expected price 37, got %v", got)
	}
}

func TestItemProfit(t *testing.T) {
	unsold := Item{Cost: 80}
	if got := unsold.Profit(); got != nil {
		t.Errorf("unsold item should have no profit, got %v", *got)
	}

	sold := Item{Cost: 80, SellingPrice: fptr(200)}
	if got := sold.Profit(); got == nil || *got != 120 {
		t.Errorf("expected profit 120, got %v", got)
	}

	loss := Item{Cost: 80, SellingPrice: fptr(50)}
	if got := loss.Profit(); got == nil || *got != -30 {
		t.Errorf("expected profit -30, got %v", got)
	}

	// A zero selling price counts as not sold (historical behavior).
	zero := Item{Cost: 80, SellingPrice: fptr(0)}
	if got := zero.Profit(); got != nil {
		t.Errorf("zero selling price should have no profit, got %v", *got)
	}
}

func TestItemStatus(t *testing.T) {
	item := Item{Cost: 80}
	if item.Status() != ItemStatusAvailable {
		t.Errorf("expected Available, got %s", item.Status())
	}
	item.SellingPrice = fptr(100)
	if item.Status() != ItemStatusSold {
		t.Errorf("expected Sold, got %s", item.Status())
	}
}

func TestProductDerivedFields(t *testing.T) {
	base := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	soldDate := base.Add(time.Hour)

	product := Product{
		Margin: 50,
		Items: []Item{
			{Cost: 80, CreatedDate: base},
			{Cost: 100, CreatedDate: base.Add(time.Minute)},
			{Cost: 90, CreatedDate: base.Add(-time.Hour), SellingPrice: fptr(200), SoldDate: &soldDate},
		},
	}

	if got := product.Quantity(); got != 2 {
		t.Errorf("expected quantity 2, got %d", got)
	}
	// max(round(80+40), round(100+50)) over unsold items only.
	if got := product.Price(); got == nil || *got != 150 {
		t.Errorf("expected price 150, got %v", got)
	}
	// Cost follows the most recently created item, sold or not.
	if got := product.Cost(); got == nil || *got != 100 {
		t.Errorf("expected cost 100, got %v", got)
	}
}

func TestProductDerivedFieldsEmpty(t *testing.T) {
	product := Product{Margin: 50}
	if got := product.Quantity(); got != 0 {
		t.Errorf("expected quantity 0, got %d", got)
	}
	if got := product.Price(); got != nil {
		t.Errorf("expected no price, got %v", *got)
	}
	if got := product.Cost(); got != nil {
		t.Errorf("expected no cost, got %v", *got)
	}
}

func TestProductPriceAllUnpriceable(t *testing.T) {
	product := Product{
		Margin: 0,
		Items:  []Item{{Cost: 80}, {Cost: 100}},
	}
	if got := product.Price(); got != nil {
		t.Errorf("zero margin should yield no product price, got %v", *got)
	}
}
