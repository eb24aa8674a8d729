package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID       uint            `gorm:"primarykey" json:"id"`
	Title    string          `gorm:"size:255;not null;index" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2);not null;index" json:"price"`
	Featured bool            `gorm:"not null;default:false;index" json:"featured"`

	CategoryID uint     `gorm:"not null;index" json:"category"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"` // preload เฉพาะตอน search/ordering

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
