package entity

import "time"

type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Title     string    `gorm:"uniqueIndex;size:255;not null" json:"title"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
