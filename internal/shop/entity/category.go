package entity

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null"`

	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "category"
}
