package model

type Role struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	RoleName string `json:"role_name" gorm:"size:100;not null;uniqueIndex"`
}
