package dto

// ── 学习小组模块 DTO ──

// CreateStudyGroupRequest 创建小组请求
type CreateStudyGroupRequest struct {
	GroupName string `json:"group_name" binding:"required,min=1,max=200"`
	CourseID  uint   `json:"course_id"  binding:"required,gt=0"`
}

// UpdateStudyGroupRequest 更新小组请求
type UpdateStudyGroupRequest struct {
	GroupName *string `json:"group_name" binding:"omitempty,min=1,max=200"`
	CourseID  *uint   `json:"course_id"  binding:"omitempty,gt=0"`
}

// StudyGroupResponse 小组信息响应（连带课程名）
type StudyGroupResponse struct {
	StudyGroupID uint   `json:"study_group_id"`
	GroupName    string `json:"group_name"`
	CourseID     uint   `json:"course_id"`
	CourseName   string `json:"course_name,omitempty"`
}
