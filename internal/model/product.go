package model

// Product represents an item the shop sells. The price check lives in the
// table definition so every engine enforces it, not just the API layer.
type Product struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	Price       float64 `json:"price" gorm:"not null;check:price > 0"`
	Description string  `json:"description" gorm:"type:text"`
}

// TableName keeps the legacy singular table name
func (Product) TableName() string {
	return "product"
}
