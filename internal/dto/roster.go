package dto

// ── 选课 / 小组成员 DTO ──

// EnrollRequest 选课请求
type EnrollRequest struct {
	UserID   uint `json:"user_id"   binding:"required,gt=0"`
	CourseID uint `json:"course_id" binding:"required,gt=0"`
}

// JoinGroupRequest 加入小组请求
type JoinGroupRequest struct {
	StudyGroupID uint `json:"study_group_id" binding:"required,gt=0"`
	UserID       uint `json:"user_id"        binding:"required,gt=0"`
}
