package repository

import (
	"context"

	"littlelemon/entity"

	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users / groups ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// นับ user ที่ username หรือ email ซ้ำ
func (r *UserRepository) CountByUsernameOrEmail(ctx context.Context, username, email string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindWithGroups โหลด user พร้อม group (ใช้ resolve role)
func (r *UserRepository) FindWithGroups(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Preload("Groups").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindGroup(ctx context.Context, name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGroupMembers รายชื่อสมาชิกในกลุ่ม เรียงตาม id
func (r *UserRepository) ListGroupMembers(ctx context.Context, groupID uint) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.WithContext(ctx).
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Where("ug.group_id = ?", groupID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) IsMember(ctx context.Context, userID, groupID uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Table("user_groups").
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Count(&cnt).Error
	return cnt > 0, err
}

// AddToGroup เพิ่มซ้ำได้ ไม่ error
func (r *UserRepository) AddToGroup(ctx context.Context, user *entity.User, group *entity.Group) error {
	return r.DB.WithContext(ctx).Model(user).Association("Groups").Append(group)
}

func (r *UserRepository) RemoveFromGroup(ctx context.Context, user *entity.User, group *entity.Group) error {
	return r.DB.WithContext(ctx).Model(user).Association("Groups").Delete(group)
}
