package repository

import (
	"context"

	"littlelemon/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.WithContext(ctx).Order("title").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return r.DB.WithContext(ctx).Model(c).
		Updates(map[string]any{"title": c.Title, "slug": c.Slug}).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Category{}, id)
	return res.RowsAffected, res.Error
}

// CountMenuItems ใช้กันลบ category ที่ยังมีเมนูอยู่
func (r *CategoryRepository) CountMenuItems(ctx context.Context, id uint) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).Where("category_id = ?", id).Count(&cnt).Error
	return cnt, err
}
