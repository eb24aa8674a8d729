package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user"`
	User   User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrew"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:SET NULL;" json:"-"`

	Status bool            `gorm:"not null;default:false;index" json:"status"` // false = placed, true = fulfilled
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Date   time.Time       `gorm:"not null;index" json:"date"`

	// preload แค่ตอน detail
	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
