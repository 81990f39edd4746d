package model

// Enrollment 选课记录表 — 对应 user_courses
// (user_id, course_id) 唯一，防止重复选课
type Enrollment struct {
	ID       uint `gorm:"primaryKey"                                  json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:uq_user_courses"        json:"user_id"`
	CourseID uint `gorm:"not null;uniqueIndex:uq_user_courses"        json:"course_id"`

	// 关联
	User   *User   `gorm:"foreignKey:UserID;references:UserID"     json:"user,omitempty"`
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "user_courses" }
