package model

// StudyGroup 学习小组表 — 对应 study_groups
type StudyGroup struct {
	StudyGroupID uint   `gorm:"primaryKey"                 json:"study_group_id"`
	GroupName    string `gorm:"type:varchar(200);not null" json:"group_name"`
	CourseID     uint   `gorm:"not null"                   json:"course_id"`
	BaseModel

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (StudyGroup) TableName() string { return "study_groups" }
