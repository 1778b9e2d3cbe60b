package model

import "time"

// タスクの状態
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// タスクの優先度
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityNormal TaskPriority = "Normal"
	TaskPriorityHigh   TaskPriority = "High"
)

// ユーザーに属するタスク。
type Task struct {
	ID          int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'Normal'" json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`

	// 所有ユーザー
	UserID int64 `gorm:"not null;index" json:"userId"`
	User   *User `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
