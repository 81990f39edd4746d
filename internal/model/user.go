package model

// User 用户表 — 对应 users
type User struct {
	UserID         uint   `gorm:"primaryKey"                                json:"user_id"`
	Name           string `gorm:"type:varchar(100);not null"                json:"name"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex"    json:"email"`
	PasswordHash   string `gorm:"type:varchar(255);not null"                json:"-"`
	ProfilePicture string `gorm:"type:varchar(100);not null;default:''"     json:"profile_picture"`
	Role           string `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
