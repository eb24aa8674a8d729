package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"` // bcrypt hash
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"-"` // superuser

	// Relations: preload เฉพาะตอนจำเป็น
	Groups []Group `gorm:"many2many:user_groups;constraint:OnDelete:CASCADE;" json:"-"`
}

// GroupNames คืนชื่อกลุ่ม (ต้อง preload Groups ก่อน)
func (u *User) GroupNames() []string {
	out := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		out = append(out, g.Name)
	}
	return out
}
