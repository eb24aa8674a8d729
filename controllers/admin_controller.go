package controllers

import (
	"time"

	"littlelemon/entity"
	"littlelemon/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type Dashboard struct {
	TotalUsers       int64           `json:"totalUsers"`
	MenuItems        int64           `json:"menuItems"`
	OrdersToday      int64           `json:"ordersToday"`
	RevenueToday     decimal.Decimal `json:"revenueToday"`
	PlacedOrders     int64           `json:"placedOrders"`
	FulfilledOrders  int64           `json:"fulfilledOrders"`
	UnassignedOrders int64           `json:"unassignedOrders"`
}

// GET /admin/dashboard ตัวเลขรวม ๆ สำหรับ manager/admin
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB.WithContext(c.Request.Context())
	var d Dashboard

	// ผู้ใช้ทั้งหมด
	if err := db.Model(&entity.User{}).Count(&d.TotalUsers).Error; err != nil {
		resp.Error(c, err)
		return
	}
	if err := db.Model(&entity.MenuItem{}).Count(&d.MenuItems).Error; err != nil {
		resp.Error(c, err)
		return
	}

	// ออเดอร์ของวันนี้ (UTC)
	start := time.Now().UTC().Truncate(24 * time.Hour)
	today := db.Model(&entity.Order{}).Where("date >= ?", start)
	if err := today.Session(&gorm.Session{}).Count(&d.OrdersToday).Error; err != nil {
		resp.Error(c, err)
		return
	}
	var revenue decimal.NullDecimal
	if err := today.Session(&gorm.Session{}).Select("SUM(total)").Row().Scan(&revenue); err != nil {
		resp.Error(c, err)
		return
	}
	d.RevenueToday = decimal.Zero
	if revenue.Valid {
		d.RevenueToday = revenue.Decimal
	}

	// สถานะ order ทั้งหมด
	if err := db.Model(&entity.Order{}).Where("status = ?", false).Count(&d.PlacedOrders).Error; err != nil {
		resp.Error(c, err)
		return
	}
	if err := db.Model(&entity.Order{}).Where("status = ?", true).Count(&d.FulfilledOrders).Error; err != nil {
		resp.Error(c, err)
		return
	}
	if err := db.Model(&entity.Order{}).
		Where("status = ? AND delivery_crew_id IS NULL", false).
		Count(&d.UnassignedOrders).Error; err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, d)
}
