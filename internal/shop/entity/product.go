package entity

// Product is a catalog entry. Quantity, price and cost are derived from its
// items at query time; nothing here is stored redundantly.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BrandID     uint      `json:"brand_id" gorm:"not null"`
	Brand       *Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	CategoryID  *uint     `json:"category_id"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Name        string    `json:"name" gorm:"size:250;not null"`
	ProductCode string    `json:"product_code" gorm:"size:100"`
	Margin      float64   `json:"margin"`

	Items []Item `json:"-" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "product"
}

// Quantity is the number of items still in stock (no selling price set).
// Requires Items to be loaded.
func (p *Product) Quantity() int {
	n := 0
	for i := range p.Items {
		if p.Items[i].SellingPrice == nil {
			n++
		}
	}
	return n
}

// Price is the highest computed price among items not yet sold, or nil when
// no unsold item yields a price.
func (p *Product) Price() *float64 {
	var best *float64
	for i := range p.Items {
		if p.Items[i].SoldDate != nil {
			continue
		}
		price := p.Items[i].Price(p.Margin)
		if price == nil {
			continue
		}
		if best == nil || *price > *best {
			best = price
		}
	}
	return best
}

// Cost is the cost of the most recently created item, or nil without items.
func (p *Product) Cost() *float64 {
	var latest *Item
	for i := range p.Items {
		if latest == nil || p.Items[i].CreatedDate.After(latest.CreatedDate) {
			latest = &p.Items[i]
		}
	}
	if latest == nil {
		return nil
	}
	cost := latest.Cost
	return &cost
}
