package model

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"size:150;not null"`
	Email     string    `json:"email" gorm:"size:200;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:text;not null"` // bcrypt hash
	RoleID    uint      `json:"role_id" gorm:"not null;index"`
	Role      Role      `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
