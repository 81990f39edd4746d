package model

import "time"

// Task 任务表 — 对应 tasks
type Task struct {
	TaskID      uint       `gorm:"primaryKey"                            json:"task_id"`
	UserID      uint       `gorm:"not null;index"                        json:"user_id"`
	Title       string     `gorm:"type:varchar(200);not null"            json:"title"`
	Description string     `gorm:"type:text;not null;default:''"         json:"description"`
	DueDate     *time.Time `gorm:""                                      json:"due_date,omitempty"`
	Subject     string     `gorm:"type:varchar(100);not null;default:''" json:"subject"`
	Priority    string     `gorm:"type:varchar(20);not null;default:''"  json:"priority"`
	IsCompleted bool       `gorm:"not null;default:false"                json:"is_completed"`
	BaseModel
}

// TableName 指定表名
func (Task) TableName() string { return "tasks" }
