package repository

import (
	"context"

	"littlelemon/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository { return &OrderRepository{DB: tx} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(ctx context.Context, o *entity.Order) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderScope คือขอบเขตที่ role มองเห็น
// UserID/CrewID เป็น nil = ไม่กรอง
type OrderScope struct {
	UserID  *uint
	CrewID  *uint
	Status  *bool
	Page    int
	PerPage int
}

// ListOrders เรียงใหม่สุดก่อน คืนจำนวนทั้งหมดด้วย
func (r *OrderRepository) ListOrders(ctx context.Context, s OrderScope) ([]entity.Order, int64, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Order{})
	if s.UserID != nil {
		q = q.Where("user_id = ?", *s.UserID)
	}
	if s.CrewID != nil {
		q = q.Where("delivery_crew_id = ?", *s.CrewID)
	}
	if s.Status != nil {
		q = q.Where("status = ?", *s.Status)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Order
	err := q.Order("date DESC, id DESC").
		Limit(s.PerPage).Offset((s.Page - 1) * s.PerPage).
		Find(&out).Error
	return out, total, err
}

// ToggleStatus สลับ status ใน statement เดียว ไม่ต้องอ่านก่อน
// crewID != nil: สลับได้เฉพาะตอนที่ order ยัง assign ให้ crew คนนั้นอยู่
func (r *OrderRepository) ToggleStatus(ctx context.Context, orderID uint, crewID *uint) (int64, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", orderID)
	if crewID != nil {
		q = q.Where("delivery_crew_id = ?", *crewID)
	}
	res := q.Update("status", gorm.Expr("NOT status"))
	return res.RowsAffected, res.Error
}

// SetDeliveryCrew crewID = nil คือถอด crew ออก
func (r *OrderRepository) SetDeliveryCrew(ctx context.Context, orderID uint, crewID *uint) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("delivery_crew_id", crewID)
	return res.RowsAffected, res.Error
}

// DeleteOrder ลบ items ก่อนแล้วค่อยลบ order (ควรเรียกใน transaction)
func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID uint) (int64, error) {
	db := r.DB.WithContext(ctx)
	if err := db.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return 0, err
	}
	res := db.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItems(ctx context.Context, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(&items).Error
}

func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.WithContext(ctx).
		Preload("MenuItem").
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	return items, err
}
