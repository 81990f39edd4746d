package model

import "time"

// Activity 学习动态表 — 对应 activities
// 只追加的审计记录，创建后不可修改或删除
type Activity struct {
	ActivityID  uint      `gorm:"primaryKey"                            json:"activity_id"`
	UserID      uint      `gorm:"not null;index"                        json:"user_id"`
	Description string    `gorm:"type:text;not null"                    json:"description"`
	Subject     string    `gorm:"type:varchar(100);not null;default:''" json:"subject"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"created_at"`
}

// TableName 指定表名
func (Activity) TableName() string { return "activities" }
