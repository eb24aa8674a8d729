package configs

import (
	"fmt"
	"strings"
	"time"

	"littlelemon/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open เปิด DB ตาม driver ที่ตั้งไว้ใน config
// TranslateError เปิดไว้เพื่อให้ unique constraint กลายเป็น gorm.ErrDuplicatedKey
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(sqliteDSN(dsn))
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if driver != "sqlite" && driver != "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}
	return db, nil
}

// sqlite ปิด foreign key ไว้เป็นค่าเริ่มต้น
// _txlock=immediate: transaction จอง write lock ตั้งแต่ BEGIN
// checkout ที่ยิงซ้อนกันจึงรอคิวแทนที่จะชนกันตอน upgrade lock
var sqliteOptions = []struct{ key, value string }{
	{"_foreign_keys", "1"},
	{"_busy_timeout", "5000"},
	{"_txlock", "immediate"},
}

func sqliteDSN(dsn string) string {
	for _, o := range sqliteOptions {
		if strings.Contains(dsn, o.key+"=") || (o.key == "_foreign_keys" && strings.Contains(dsn, "_fk=")) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + o.key + "=" + o.value
	}
	return dsn
}

// SetupDatabase migrate schema
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Group{}, &entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
