package model

import "time"

// UserModel mirrors the account record owned by the external auth service.
// This backend reads it for identity display and order snapshots; it never
// creates credentials.
type UserModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	UserName  string    `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`
	UserEmail string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserRole  string    `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
