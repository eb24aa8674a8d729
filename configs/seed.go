package configs

import (
	"fmt"
	"log"

	"littlelemon/entity"
	"littlelemon/roles"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGroups สร้างกลุ่ม staff ที่ระบบต้องใช้
func SeedGroups(db *gorm.DB) error {
	for _, name := range []string{roles.ManagerGroup, roles.DeliveryCrewGroup} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return fmt.Errorf("seed group %q: %w", name, err)
		}
	}
	return nil
}

// SeedAdmin สร้าง superuser ครั้งแรก
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		IsAdmin:   true,
	}
	return db.Create(&admin).Error
}
