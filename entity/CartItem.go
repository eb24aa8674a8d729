package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem หนึ่งบรรทัดในตะกร้า ต่อ (user, menu item) ได้แค่บรรทัดเดียว
// ลบแบบ hard delete เสมอ ไม่งั้น unique index จะชน
type CartItem struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_menuitem" json:"user"`
	User   User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_cart_user_menuitem" json:"menuitem"`
	MenuItem   MenuItem `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unitPrice"` // ราคาตอนหยิบใส่ตะกร้า
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`    // quantity * unitPrice

	CreatedAt time.Time `json:"-"`
}
