package model

import (
	"time"
)

type Subcategory struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	Category   Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
