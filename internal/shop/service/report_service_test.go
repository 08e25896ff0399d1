package service

import (
	"errors"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"github.com/artenepo/inventory-manager/internal/shop/query"
	"gorm.io/gorm"
)

func createSoldItem(t *testing.T, db *gorm.DB, productID, supplierID uint, cost, price float64, sold time.Time) {
	t.Helper()
	item := entity.Item{
		ProductID:    productID,
		SupplierID:   supplierID,
		CreatedDate:  sold.Add(-24 * time.Hour),
		UpdatedDate:  sold.Add(-24 * time.Hour),
		Cost:         cost,
		SellingPrice: &price,
		SoldDate:     &sold,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to seed sold item: %v", err)
	}
}

func TestDailyReportGroups(t *testing.T) {
	db, _, services, now := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	today := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.UTC)
	yesterday := today.Add(-24 * time.Hour)

	// Two identical sales collapse into one group; a different cost splits.
	createSoldItem(t, db, product.ID, supplier.ID, 80, 200, today)
	createSoldItem(t, db, product.ID, supplier.ID, 80, 200, today)
	createSoldItem(t, db, product.ID, supplier.ID, 100, 200, today)
	createSoldItem(t, db, product.ID, supplier.ID, 50, 100, yesterday)

	rpt, err := services.Report.Daily(query.And{}, "")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if rpt.Date != "2026-08-31" {
		t.Errorf("expected date 2026-08-31, got %s", rpt.Date)
	}
	if len(rpt.Items) != 2 {
		t.Fatalf("expected 2 groups, got %d: %+v", len(rpt.Items), rpt.Items)
	}
	for _, row := range rpt.Items {
		switch row.Cost {
		case 80:
			if row.Quantity != 2 || row.Profit != 240 {
				t.Errorf("cost-80 group: want quantity 2 profit 240, got %+v", row)
			}
		case 100:
			if row.Quantity != 1 || row.Profit != 100 {
				t.Errorf("cost-100 group: want quantity 1 profit 100, got %+v", row)
			}
		default:
			t.Errorf("unexpected group: %+v", row)
		}
		if row.Name != product.Name || row.SellingPrice != 200 {
			t.Errorf("unexpected group: %+v", row)
		}
	}
	if rpt.TotalProfit != 340 {
		t.Errorf("expected total profit 340, got %v", rpt.TotalProfit)
	}

	wantDates := []string{"2026-08-31", "2026-08-30"}
	if len(rpt.Dates) != 2 || rpt.Dates[0] != wantDates[0] || rpt.Dates[1] != wantDates[1] {
		t.Errorf("expected sale dates %v, got %v", wantDates, rpt.Dates)
	}
}

func TestDailyReportExplicitDate(t *testing.T) {
	db, _, services, _ := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	sold := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	createSoldItem(t, db, product.ID, supplier.ID, 50, 100, sold)

	rpt, err := services.Report.Daily(query.And{}, "2026-08-30")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if len(rpt.Items) != 1 || rpt.TotalProfit != 50 {
		t.Errorf("expected single group with total 50, got %+v", rpt)
	}

	// A day without sales is an empty report, not an error.
	empty, err := services.Report.Daily(query.And{}, "2020-01-01")
	if err != nil {
		t.Fatalf("Daily failed on empty day: %v", err)
	}
	if len(empty.Items) != 0 || empty.TotalProfit != 0 {
		t.Errorf("expected empty report, got %+v", empty)
	}
}

func TestDailyReportInvalidDate(t *testing.T) {
	_, _, services, _ := setupServices(t)

	if _, err := services.Report.Daily(query.And{}, "31-08-2026"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestDailyReportBrandFilter(t *testing.T) {
	db, _, services, now := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	other := entity.Brand{Name: "Umbrella"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("Failed to seed brand: %v", err)
	}
	otherProduct := entity.Product{BrandID: other.ID, Name: "Wrench", Margin: 50}
	if err := db.Create(&otherProduct).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.UTC)
	createSoldItem(t, db, product.ID, supplier.ID, 80, 200, today)
	createSoldItem(t, db, otherProduct.ID, supplier.ID, 30, 60, today)

	params := url.Values{}
	params.Set(query.ParamBrandID, strconv.FormatUint(uint64(other.ID), 10))
	pred, err := query.FromParams(params)
	if err != nil {
		t.Fatalf("FromParams failed: %v", err)
	}

	rpt, err := services.Report.Daily(pred, "")
	if err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if len(rpt.Items) != 1 || rpt.Items[0].Name != "Wrench" {
		t.Fatalf("expected only the filtered brand's group, got %+v", rpt.Items)
	}
	if rpt.TotalProfit != 30 {
		t.Errorf("expected total 30, got %v", rpt.TotalProfit)
	}
}

func TestAnalytics(t *testing.T) {
	db, _, services, now := setupServices(t)
	product, supplier := seedCatalog(t, db, 50) // "Hammer"

	runner := entity.Product{BrandID: product.BrandID, Name: "Anvil", Margin: 50}
	if err := db.Create(&runner).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	// Hammer: 300 profit in the window. Anvil: 500 over two sales, so it
	// ranks first. The 40-day-old sale stays outside the window.
	createSoldItem(t, db, product.ID, supplier.ID, 200, 500, now.AddDate(0, 0, -5))
	createSoldItem(t, db, runner.ID, supplier.ID, 250, 500, now.AddDate(0, 0, -10))
	createSoldItem(t, db, runner.ID, supplier.ID, 250, 500, now.AddDate(0, 0, -10))
	createSoldItem(t, db, product.ID, supplier.ID, 1, 1000, now.AddDate(0, 0, -40))

	rpt, err := services.Report.Analytics(query.And{})
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if rpt.Since != "2026-08-01" {
		t.Errorf("expected window since 2026-08-01, got %s", rpt.Since)
	}
	if len(rpt.Items) != 2 {
		t.Fatalf("expected 2 products, got %+v", rpt.Items)
	}
	if rpt.Items[0].Product != "Anvil" || rpt.Items[0].Profit != 500 || rpt.Items[0].Quantity != 2 {
		t.Errorf("unexpected top row: %+v", rpt.Items[0])
	}
	if rpt.Items[1].Product != "Hammer" || rpt.Items[1].Profit != 300 || rpt.Items[1].Quantity != 1 {
		t.Errorf("unexpected second row: %+v", rpt.Items[1])
	}
	if rpt.TotalProfit != 800 {
		t.Errorf("expected total 800, got %v", rpt.TotalProfit)
	}
}

func TestAnalyticsWindowBoundary(t *testing.T) {
	db, _, services, _ := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	// The window opens at midnight 30 days back: midnight itself is in,
	// one second earlier is out.
	edge := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	createSoldItem(t, db, product.ID, supplier.ID, 10, 30, edge)
	createSoldItem(t, db, product.ID, supplier.ID, 10, 100, edge.Add(-time.Second))

	rpt, err := services.Report.Analytics(query.And{})
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if len(rpt.Items) != 1 || rpt.Items[0].Quantity != 1 || rpt.Items[0].Profit != 20 {
		t.Errorf("expected only the midnight sale counted, got %+v", rpt.Items)
	}
	if rpt.TotalProfit != 20 {
		t.Errorf("expected total 20, got %v", rpt.TotalProfit)
	}
}

func TestAnalyticsEmpty(t *testing.T) {
	_, _, services, _ := setupServices(t)

	rpt, err := services.Report.Analytics(query.And{})
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if len(rpt.Items) != 0 || rpt.TotalProfit != 0 {
		t.Errorf("expected empty analytics, got %+v", rpt)
	}
}
