package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	CourseName     string `json:"course_name"     binding:"required,min=1,max=200"`
	CourseCode     string `json:"course_code"     binding:"required,min=1,max=50"`
	InstructorName string `json:"instructor_name" binding:"omitempty,max=100"`
}

// UpdateCourseRequest 更新课程请求
type UpdateCourseRequest struct {
	CourseName     *string `json:"course_name"     binding:"omitempty,min=1,max=200"`
	CourseCode     *string `json:"course_code"     binding:"omitempty,min=1,max=50"`
	InstructorName *string `json:"instructor_name" binding:"omitempty,max=100"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	CourseID       uint   `json:"course_id"`
	CourseName     string `json:"course_name"`
	CourseCode     string `json:"course_code"`
	InstructorName string `json:"instructor_name,omitempty"`
}
