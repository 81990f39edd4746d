package dto

// ── 用户模块 DTO ──

// UpdateUserRequest 更新用户请求（部分更新，缺省字段保持原值）
type UpdateUserRequest struct {
	Name           *string `json:"name"            binding:"omitempty,min=1,max=100"`
	Email          *string `json:"email"           binding:"omitempty,email"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,max=100"`
}

// UserResponse 用户信息响应（不含密码哈希）
type UserResponse struct {
	UserID         uint   `json:"user_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
	Role           string `json:"role"`
	CreatedAt      string `json:"created_at"`
}
