package services

import "github.com/shopspring/decimal"

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ขอบเขตตามชนิดคอลัมน์: price decimal(6,2), line/order total decimal(10,2)
const MaxQuantity = 1000

var (
	MaxPrice = decimal.RequireFromString("9999.99")
	MaxTotal = decimal.RequireFromString("99999999.99")
)

type PageInfo struct {
	Count   int64 `json:"count"`
	Page    int   `json:"page"`
	PerPage int   `json:"perpage"`
}

// normalizePage ค่าผิดจะถูกปรับเป็นค่า default ไม่ error
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
