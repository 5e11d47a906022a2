package model

// Order links a customer to a purchased product. Both references are
// store-enforced foreign keys; deleting the referenced customer or product
// cascades and removes the order.
type Order struct {
	ID         uint `json:"id" gorm:"primarykey"`
	Qty        int  `json:"qty" gorm:"not null"`
	CustomerID uint `json:"customer_id" gorm:"column:customer_id;not null"`
	ProductID  uint `json:"product_id" gorm:"column:product_id;not null"`

	Customer *Customer `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Product  *Product  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName keeps the legacy singular table name
func (Order) TableName() string {
	return "order"
}
