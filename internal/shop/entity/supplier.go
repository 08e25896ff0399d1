package entity

// Supplier is a party items are sourced from. Deleting a supplier is
// blocked by the store while any item still references it.
type Supplier struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:150;not null"`
	Phone string `json:"phone" gorm:"size:20"`
	Notes string `json:"notes" gorm:"size:500"`

	Items []Item `json:"-" gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string {
	return "supplier"
}
