package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ユーザー（アカウント）レコード。
// emailは小文字に正規化してから保存する（uniqueIndexで大文字小文字を区別しない扱いになる）。
type User struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName       string     `gorm:"not null" json:"fullName"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordDigest string     `gorm:"column:password_digest;not null" json:"-"`
	Role           Role       `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive       bool       `gorm:"not null;default:true" json:"isActive"`
	LastLoginAt    *time.Time `json:"lastLoginAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
