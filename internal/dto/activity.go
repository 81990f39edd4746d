package dto

// ── 学习动态模块 DTO ──

// CreateActivityRequest 记录动态请求
type CreateActivityRequest struct {
	Description string `json:"description" binding:"required,min=1"`
	Subject     string `json:"subject"     binding:"omitempty,max=100"`
}

// ActivityResponse 动态信息响应
type ActivityResponse struct {
	ActivityID  uint   `json:"activity_id"`
	UserID      uint   `json:"user_id"`
	Description string `json:"description"`
	Subject     string `json:"subject,omitempty"`
	CreatedAt   string `json:"created_at"`
}
