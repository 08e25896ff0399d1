package service

import (
	"context"

	"github.com/artenepo/inventory-manager/internal/shop/entity"
	"github.com/artenepo/inventory-manager/internal/shop/query"
	"github.com/artenepo/inventory-manager/internal/shop/repository"
)

// CatalogService serves the filtered product listings, the nav context and
// the supplier/brand/category/product management operations.
type CatalogService struct {
	repos *repository.Repositories
	nav   *NavCache
}

func NewCatalogService(repos *repository.Repositories, nav *NavCache) *CatalogService {
	return &CatalogService{repos: repos, nav: nav}
}

// ProductView is a product row with its derived fields resolved.
type ProductView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	ProductCode string   `json:"product_code"`
	Margin      float64  `json:"margin"`
	BrandID     uint     `json:"brand_id"`
	Brand       string   `json:"brand"`
	CategoryID  *uint    `json:"category_id"`
	Category    string   `json:"category"`
	Quantity    int      `json:"quantity"`
	Price       *float64 `json:"price"`
	Cost        *float64 `json:"cost"`
}

// ListProducts resolves the filter predicate against products, ordered by
// name. An empty result is a valid answer, never an error.
func (s *CatalogService) ListProducts(pred query.Node) ([]ProductView, error) {
	products, err := s.repos.Product.List(pred)
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, len(products))
	for i := range products {
		views[i] = newProductView(&products[i])
	}
	return views, nil
}

func newProductView(p *entity.Product) ProductView {
	view := ProductView{
		ID:          p.ID,
		Name:        p.Name,
		ProductCode: p.ProductCode,
		Margin:      p.Margin,
		BrandID:     p.BrandID,
		CategoryID:  p.CategoryID,
		Quantity:    p.Quantity(),
		Price:       p.Price(),
		Cost:        p.Cost(),
	}
	if p.Brand != nil {
		view.Brand = p.Brand.Name
	}
	if p.Category != nil {
		view.Category = p.Category.Name
	}
	return view
}

// Nav returns the categories/brands/suppliers side context, from redis when
// a fresh copy is cached.
func (s *CatalogService) Nav(ctx context.Context) (*NavContext, error) {
	if nav := s.nav.Get(ctx); nav != nil {
		return nav, nil
	}

	categories, err := s.repos.Category.List()
	if err != nil {
		return nil, err
	}
	brands, err := s.repos.Brand.List()
	if err != nil {
		return nil, err
	}
	suppliers, err := s.repos.Supplier.List()
	if err != nil {
		return nil, err
	}

	nav := &NavContext{Categories: categories, Brands: brands, Suppliers: suppliers}
	s.nav.Put(ctx, nav)
	return nav, nil
}

type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (s *CatalogService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{Name: req.Name, Phone: req.Phone, Notes: req.Notes}
	if err := s.repos.Supplier.Create(supplier); err != nil {
		return nil, err
	}
	s.nav.Invalidate(ctx)
	return supplier, nil
}

func (s *CatalogService) UpdateSupplier(ctx context.Context, id uint, req CreateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.repos.Supplier.Get(id)
	if err != nil {
		return nil, err
	}
	supplier.Name = req.Name
	supplier.Phone = req.Phone
	supplier.Notes = req.Notes
	if err := s.repos.Supplier.Update(supplier); err != nil {
		return nil, err
	}
	s.nav.Invalidate(ctx)
	return supplier, nil
}

// DeleteSupplier removes a supplier. The store blocks the delete while items
// still reference it; the caller surfaces that as a conflict.
func (s *CatalogService) DeleteSupplier(ctx context.Context, id uint) error {
	if err := s.repos.Supplier.Delete(id); err != nil {
		return err
	}
	s.nav.Invalidate(ctx)
	return nil
}

type NamedRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *CatalogService) CreateBrand(ctx context.Context, req NamedRequest) (*entity.Brand, error) {
	brand := &entity.Brand{Name: req.Name}
	if err := s.repos.Brand.Create(brand); err != nil {
		return nil, err
	}
	s.nav.Invalidate(ctx)
	return brand, nil
}

func (s *CatalogService) UpdateBrand(ctx context.Context, id uint, req NamedRequest) (*entity.Brand, error) {
	brand, err := s.repos.Brand.Get(id)
	if err != nil {
		return nil, err
	}
	brand.Name = req.Name
	if err := s.repos.Brand.Update(brand); err != nil {
		return nil, err
	}
	s.nav.Invalidate(ctx)
	return brand, nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id uint) error {
	if err := s.repos.Brand.Delete(id); err != nil {
		return err
	}
	s.nav.Invalidate(ctx)
	return nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req NamedRequest) (*entity.Category, error) {
	category := &entity.Category{Name: req.Name}
	if err := s.repos.Category.Create(category); err != nil {
		return nil, err
	}
	s.nav.Invalidate(ctx)
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, req NamedRequest) (*entity.Category, error) {
	category, err := s.repos.Category.Get(id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	if err := s.repos.Category.Update(category); err != nil {
		return nil, err
	}
	s.nav.Invalidate(ctx)
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repos.Category.Delete(id); err != nil {
		return err
	}
	s.nav.Invalidate(ctx)
	return nil
}

type ProductRequest struct {
	BrandID     uint    `json:"brand_id" binding:"required"`
	CategoryID  *uint   `json:"category_id"`
	Name        string  `json:"name" binding:"required"`
	ProductCode string  `json:"product_code"`
	Margin      float64 `json:"margin"`
}

func (s *CatalogService) CreateProduct(req ProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		ProductCode: req.ProductCode,
		Margin:      req.Margin,
	}
	if err := s.repos.Product.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(id uint, req ProductRequest) (*entity.Product, error) {
	product, err := s.repos.Product.Get(id)
	if err != nil {
		return nil, err
	}
	product.BrandID = req.BrandID
	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.ProductCode = req.ProductCode
	product.Margin = req.Margin
	if err := s.repos.Product.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	return s.repos.Product.Delete(id)
}
