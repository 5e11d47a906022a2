package model

// Customer represents a shop customer
type Customer struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	FullName string `json:"full_name" gorm:"column:full_name;type:varchar(255);not null"`
	Email    string `json:"email" gorm:"type:varchar(255);not null"`
}

// TableName keeps the legacy singular table name
func (Customer) TableName() string {
	return "customer"
}
