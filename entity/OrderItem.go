package entity

import (
	"github.com/shopspring/decimal"
)

// OrderItem ห้ามแก้หลังสร้าง
type OrderItem struct {
	ID      uint  `gorm:"primarykey" json:"id"`
	OrderID uint  `gorm:"not null;uniqueIndex:idx_order_menuitem" json:"order"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_order_menuitem" json:"menuitem"`
	MenuItem   MenuItem `gorm:"constraint:OnDelete:RESTRICT;" json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
