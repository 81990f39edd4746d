package model

// Membership 小组成员表 — 对应 study_group_members
// (study_group_id, user_id) 唯一，防止重复加入
type Membership struct {
	ID           uint `gorm:"primaryKey"                                   json:"id"`
	StudyGroupID uint `gorm:"not null;uniqueIndex:uq_study_group_members"  json:"study_group_id"`
	UserID       uint `gorm:"not null;uniqueIndex:uq_study_group_members"  json:"user_id"`

	// 关联
	StudyGroup *StudyGroup `gorm:"foreignKey:StudyGroupID;references:StudyGroupID" json:"study_group,omitempty"`
	User       *User       `gorm:"foreignKey:UserID;references:UserID"             json:"user,omitempty"`
}

// TableName 指定表名
func (Membership) TableName() string { return "study_group_members" }
