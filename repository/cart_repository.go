package repository

import (
	"context"

	"littlelemon/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) WithTx(tx *gorm.DB) *CartRepository { return &CartRepository{DB: tx} }

// ListByUser คืนทุกบรรทัดในตะกร้าของ user พร้อมเมนู
func (r *CartRepository) ListByUser(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.WithContext(ctx).
		Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	return items, err
}

// LockByUser อ่านตะกร้าแบบ SELECT ... FOR UPDATE (ใช้ใน transaction ตอน checkout)
// sqlite ไม่มี row lock; transaction ของ sqlite lock ทั้งไฟล์อยู่แล้ว
func (r *CartRepository) LockByUser(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	q := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id")
	if r.DB.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var items []entity.CartItem
	err := q.Find(&items).Error
	return items, err
}

// Create ถ้า (user, menuitem) ซ้ำจะได้ gorm.ErrDuplicatedKey
func (r *CartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, menuItemID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearCart(ctx context.Context, userID uint) (int64, error) {
	res := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteIDs ลบเฉพาะบรรทัดที่อ่านมา คืนจำนวนที่ลบได้จริง
func (r *CartRepository) DeleteIDs(ctx context.Context, userID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
