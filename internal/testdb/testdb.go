// Package testdb opens a migrated in-memory SQLite database for tests.
package testdb

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"littlelemon/configs"
	"littlelemon/entity"
	"littlelemon/roles"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Open คืน DB ใหม่ต่อเทสต์ (ชื่อไม่ซ้ำกัน) พร้อม schema และ group
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	// in-memory shared cache: ใช้ connection เดียวกันตลอด กัน table lock
	return open(t, fmt.Sprintf("file:%s?mode=memory&cache=shared", name), 1)
}

// OpenFile ใช้ไฟล์ใน t.TempDir() และ pool ปกติ สำหรับเทสต์ที่ยิง request พร้อมกัน
func OpenFile(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, filepath.Join(t.TempDir(), "littlelemon.db"), 0)
}

func open(t *testing.T, dsn string, maxConns int) *gorm.DB {
	t.Helper()
	db, err := configs.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(maxConns)
	t.Cleanup(func() { sqlDB.Close() })

	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedGroups(db); err != nil {
		t.Fatalf("seed groups: %v", err)
	}
	return db
}

// Password ของ user ทุกคนที่สร้างจาก User()
const Password = "lemon-secret"

var passwordHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// User สร้าง user แล้วใส่ group ตามที่ระบุ
func User(t *testing.T, db *gorm.DB, username string, isAdmin bool, groups ...string) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@littlelemon.test",
		Password: passwordHash,
		IsAdmin:  isAdmin,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	for _, name := range groups {
		var g entity.Group
		if err := db.Where("name = ?", name).First(&g).Error; err != nil {
			t.Fatalf("group %s: %v", name, err)
		}
		if err := db.Model(u).Association("Groups").Append(&g); err != nil {
			t.Fatalf("add %s to %s: %v", username, name, err)
		}
	}
	return u
}

func Actor(u *entity.User, groups ...string) *roles.Actor {
	return &roles.Actor{UserID: u.ID, Username: u.Username, Caps: roles.Resolve(u.IsAdmin, groups)}
}

func Category(t *testing.T, db *gorm.DB, title string) *entity.Category {
	t.Helper()
	c := &entity.Category{Title: title, Slug: strings.ToLower(strings.ReplaceAll(title, " ", "-"))}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

func MenuItem(t *testing.T, db *gorm.DB, title, price string, cat *entity.Category) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Title: title, Price: decimal.RequireFromString(price), CategoryID: cat.ID}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return m
}
