package service

import (
	"testing"
	"time"

	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"github.com/artenepo/inventory-manager/internal/shop/repository"
	"github.com/artenepo/inventory-manager/internal/shop/testutil"
	"gorm.io/gorm"
)

func fptr(v float64) *float64 { return &v }

// setupServices wires the service stack against a throwaway schema with a
// controllable clock.
func setupServices(t *testing.T) (*gorm.DB, *repository.Repositories, *Services, *time.Time) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	services := NewServices(repos, NewNavCache(nil, 0), clock)
	return db, repos, services, &now
}

func seedCatalog(t *testing.T, db *gorm.DB, margin float64) (*entity.Product, *entity.Supplier) {
	t.Helper()

	brand := entity.Brand{Name: "Acme"}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("Failed to seed brand: %v", err)
	}
	category := entity.Category{Name: "Tools"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	product := entity.Product{
		BrandID:     brand.ID,
		CategoryID:  &category.ID,
		Name:        "Hammer",
		ProductCode: "HAM-001",
		Margin:      margin,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	supplier := entity.Supplier{Name: "Warehouse Ltd", Phone: "555-0101"}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("Failed to seed supplier: %v", err)
	}
	return &product, &supplier
}

func TestSellOldestFirst(t *testing.T) {
	db, _, services, now := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	// Stock the cheap item an hour before the expensive one.
	stock := func(cost float64) {
		if _, err := services.Warehouse.Stock(StockRequest{
			Amount: 1, ProductID: product.ID, SupplierID: supplier.ID, Cost: fptr(cost),
		}); err != nil {
			t.Fatalf("Failed to stock: %v", err)
		}
	}
	stock(80)
	*now = now.Add(time.Hour)
	stock(100)
	*now = now.Add(time.Hour)
	saleTime := *now

	sold, err := services.Sale.Sell(SellRequest{Amount: 1, ProductID: product.ID, Price: fptr(200)})
	if err != nil {
		t.Fatalf("Sell failed: %v", err)
	}
	if len(sold) != 1 {
		t.Fatalf("expected 1 item sold, got %d", len(sold))
	}
	if sold[0].Cost != 80 {
		t.Errorf("expected the oldest (cost 80) item sold first, got cost %v", sold[0].Cost)
	}

	var item entity.Item
	if err := db.First(&item, sold[0].ID).Error; err != nil {
		t.Fatalf("Failed to reload sold item: %v", err)
	}
	if item.SellingPrice == nil || *item.SellingPrice != 200 {
		t.Errorf("expected selling price 200, got %v", item.SellingPrice)
	}
	if item.SoldDate == nil || !item.SoldDate.Equal(saleTime) {
		t.Errorf("expected sold date %v, got %v", saleTime, item.SoldDate)
	}
	if profit := item.Profit(); profit == nil || *profit != 120 {
		t.Errorf("expected profit 120, got %v", profit)
	}

	var unsold int64
	db.Model(&entity.Item{}).Where("selling_price IS NULL").Count(&unsold)
	if unsold != 1 {
		t.Errorf("expected 1 item left in stock, got %d", unsold)
	}
}

func TestSellMoreThanAvailable(t *testing.T) {
	db, _, services, _ := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	if _, err := services.Warehouse.Stock(StockRequest{
		Amount: 2, ProductID: product.ID, SupplierID: supplier.ID, Cost: fptr(60),
	}); err != nil {
		t.Fatalf("Failed to stock: %v", err)
	}

	sold, err := services.Sale.Sell(SellRequest{Amount: 5, ProductID: product.ID, Price: fptr(90)})
	if err != nil {
		t.Fatalf("overselling must not error: %v", err)
	}
	if len(sold) != 2 {
		t.Errorf("expected all 2 available items sold, got %d", len(sold))
	}
}

func TestSellNothingInStock(t *testing.T) {
	db, _, services, _ := setupServices(t)
	product, _ := seedCatalog(t, db, 50)

	sold, err := services.Sale.Sell(SellRequest{Amount: 3, ProductID: product.ID, Price: fptr(90)})
	if err != nil {
		t.Fatalf("selling from empty stock must not error: %v", err)
	}
	if len(sold) != 0 {
		t.Errorf("expected nothing sold, got %d", len(sold))
	}
}

func TestMarkSoldKeepsSoldDate(t *testing.T) {
	db, repos, services, now := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	if _, err := services.Warehouse.Stock(StockRequest{
		Amount: 1, ProductID: product.ID, SupplierID: supplier.ID, Cost: fptr(40),
	}); err != nil {
		t.Fatalf("Failed to stock: %v", err)
	}

	firstSale := *now
	sold, err := services.Sale.Sell(SellRequest{Amount: 1, ProductID: product.ID, Price: fptr(100)})
	if err != nil {
		t.Fatalf("Sell failed: %v", err)
	}

	// Re-pricing an already sold item must not move its sold date.
	*now = now.Add(48 * time.Hour)
	if err := repos.Item.MarkSold(&sold[0], 120, *now); err != nil {
		t.Fatalf("MarkSold failed: %v", err)
	}

	var item entity.Item
	if err := db.First(&item, sold[0].ID).Error; err != nil {
		t.Fatalf("Failed to reload item: %v", err)
	}
	if item.SellingPrice == nil || *item.SellingPrice != 120 {
		t.Errorf("expected updated selling price 120, got %v", item.SellingPrice)
	}
	if item.SoldDate == nil || !item.SoldDate.Equal(firstSale) {
		t.Errorf("sold date moved: expected %v, got %v", firstSale, item.SoldDate)
	}
}

func TestSaveStampsSoldDate(t *testing.T) {
	db, repos, _, _ := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	saveTime := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	item := entity.Item{
		ProductID:    product.ID,
		SupplierID:   supplier.ID,
		Cost:         40,
		SellingPrice: fptr(70),
	}
	if err := repos.Item.Save(&item, saveTime); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if item.SoldDate == nil || !item.SoldDate.Equal(saveTime) {
		t.Fatalf("expected sold date stamped at save, got %v", item.SoldDate)
	}

	// A later save re-stamps the creation date but leaves the sold date.
	later := saveTime.Add(time.Hour)
	if err := repos.Item.Save(&item, later); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if !item.CreatedDate.Equal(later) {
		t.Errorf("expected creation date re-stamped to %v, got %v", later, item.CreatedDate)
	}
	if !item.SoldDate.Equal(saveTime) {
		t.Errorf("sold date moved on second save: %v", item.SoldDate)
	}
}

func TestStockCreatesUnsoldItems(t *testing.T) {
	db, _, services, now := setupServices(t)
	product, supplier := seedCatalog(t, db, 50)

	created, err := services.Warehouse.Stock(StockRequest{
		Amount: 3, ProductID: product.ID, SupplierID: supplier.ID, Cost: fptr(25),
	})
	if err != nil {
		t.Fatalf("Stock failed: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 items created, got %d", len(created))
	}

	var items []entity.Item
	if err := db.Find(&items).Error; err != nil {
		t.Fatalf("Failed to load items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(items))
	}
	for _, item := range items {
		if item.SellingPrice != nil || item.SoldDate != nil {
			t.Errorf("freshly stocked item %d must be unsold", item.ID)
		}
		if item.Cost != 25 || item.ProductID != product.ID || item.SupplierID != supplier.ID {
			t.Errorf("unexpected item row: %+v", item)
		}
		if !item.CreatedDate.Equal(*now) || !item.UpdatedDate.Equal(*now) {
			t.Errorf("expected both timestamps stamped with the clock, got %+v", item)
		}
	}
}
