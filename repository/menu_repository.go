package repository

import (
	"context"
	"strings"

	"littlelemon/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuFilter คือ query ของ GET /menu-items
type MenuFilter struct {
	Search   string // title หรือ category title (ไม่สนตัวเล็กใหญ่)
	Category string // slug หรือ title ตรงตัว
	Ordering string // price, -price, category, -category, title, -title
	Page     int
	PerPage  int
}

var menuOrderings = map[string]string{
	"price":     "menu_items.price ASC, menu_items.id ASC",
	"-price":    "menu_items.price DESC, menu_items.id ASC",
	"category":  "categories.title ASC, menu_items.id ASC",
	"-category": "categories.title DESC, menu_items.id ASC",
	"title":     "menu_items.title ASC, menu_items.id ASC",
	"-title":    "menu_items.title DESC, menu_items.id ASC",
}

// search เป็นข้อความธรรมดา; % และ _ ไม่ใช่ wildcard
// ใช้ ! เป็น escape เพราะ \ ตีความต่างกันใน mysql/postgres
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ValidOrdering ใช้ตรวจ query ก่อนส่งเข้ามา
func ValidOrdering(o string) bool {
	if o == "" {
		return true
	}
	_, ok := menuOrderings[o]
	return ok
}

// List ดึงเมนูตาม filter + จำนวนทั้งหมด (ก่อนแบ่งหน้า)
func (r *MenuRepository) List(ctx context.Context, f MenuFilter) ([]entity.MenuItem, int64, error) {
	q := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Joins("JOIN categories ON categories.id = menu_items.category_id")
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		like := "%" + likeEscaper.Replace(s) + "%"
		q = q.Where("LOWER(menu_items.title) LIKE ? ESCAPE '!' OR LOWER(categories.title) LIKE ? ESCAPE '!'", like, like)
	}
	if f.Category != "" {
		q = q.Where("categories.slug = ? OR categories.title = ?", f.Category, f.Category)
	}
	q = q.Session(&gorm.Session{}) // ใช้ซ้ำทั้ง count และ find

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := menuOrderings[f.Ordering]
	if !ok {
		order = "menu_items.id ASC"
	}
	var items []entity.MenuItem
	err := q.Select("menu_items.*").
		Order(order).
		Limit(f.PerPage).Offset((f.Page - 1) * f.PerPage).
		Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(ctx context.Context, m *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

// Update เขียนทุก field (PUT) รวมถึง featured=false
func (r *MenuRepository) Update(ctx context.Context, m *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Model(m).Updates(map[string]any{
		"title":       m.Title,
		"price":       m.Price,
		"featured":    m.Featured,
		"category_id": m.CategoryID,
	}).Error
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

// ToggleFeatured สลับ featured ใน statement เดียว
func (r *MenuRepository) ToggleFeatured(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("featured", gorm.Expr("NOT featured"))
	return res.RowsAffected, res.Error
}

// CountOrderItems เมนูที่เคยถูกสั่งแล้วลบไม่ได้
func (r *MenuRepository) CountOrderItems(ctx context.Context, id uint) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.OrderItem{}).Where("menu_item_id = ?", id).Count(&cnt).Error
	return cnt, err
}
