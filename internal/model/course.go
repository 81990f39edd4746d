package model

// Course 课程表 — 对应 courses
type Course struct {
	CourseID       uint   `gorm:"primaryKey"                            json:"course_id"`
	CourseName     string `gorm:"type:varchar(200);not null"            json:"course_name"`
	CourseCode     string `gorm:"type:varchar(50);not null"             json:"course_code"`
	InstructorName string `gorm:"type:varchar(100);not null;default:''" json:"instructor_name"`
	BaseModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
