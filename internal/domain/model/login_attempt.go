package model

import "time"

// ログイン試行の記録。
// 成功・失敗どちらも残す（emailが存在しない場合 UserID は 0）。
type LoginAttempt struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"index" json:"user_id"`
	Email       string    `gorm:"not null;index" json:"email"`
	Successful  bool      `gorm:"not null" json:"successful"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	AttemptedAt time.Time `gorm:"not null" json:"attempted_at"`
}
