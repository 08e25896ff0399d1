package entity

type Brand struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:150;not null"`

	Products []Product `json:"-" gorm:"foreignKey:BrandID"`
}

func (Brand) TableName() string {
	return "brand"
}
