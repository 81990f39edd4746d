package model

import "time"

// 会话类型枚举
const (
	SessionTypeStudy = "study"
	SessionTypeExam  = "exam"
	SessionTypeClass = "class"
)

// Session 学习会话表 — 对应 sessions
// duration_minutes 仅在 is_completed=true 后有意义
type Session struct {
	SessionID       uint      `gorm:"primaryKey"                            json:"session_id"`
	UserID          uint      `gorm:"not null;index"                        json:"user_id"`
	Title           string    `gorm:"type:varchar(200);not null"            json:"title"`
	SessionType     string    `gorm:"type:varchar(10);not null"             json:"session_type"`
	Date            time.Time `gorm:"not null;index"                        json:"date"`
	Venue           string    `gorm:"type:varchar(200);not null"            json:"venue"`
	Description     string    `gorm:"type:text;not null;default:''"         json:"description"`
	IsCompleted     bool      `gorm:"not null;default:false"                json:"is_completed"`
	DurationMinutes int       `gorm:"not null;default:0"                    json:"duration_minutes"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Session) TableName() string { return "sessions" }
