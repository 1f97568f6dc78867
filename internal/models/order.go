package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order keeps the total it was created with; later product price changes
// do not touch it.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"index;not null" json:"-"`
	Customer    Customer        `gorm:"constraint:OnDelete:CASCADE" json:"customer"`
	Products    []Product       `gorm:"many2many:order_products;constraint:OnDelete:CASCADE" json:"products"`
	OrderDate   time.Time       `gorm:"not null" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Product{},
		&Order{},
	}
}
