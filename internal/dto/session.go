package dto

import "time"

// ── 会话模块 DTO ──

// CreateSessionRequest 创建会话请求
type CreateSessionRequest struct {
	Title       string    `json:"title"        binding:"required,min=1,max=200"`
	SessionType string    `json:"type"         binding:"required,oneof=study exam class"`
	Date        time.Time `json:"date"         binding:"required"`
	Venue       string    `json:"venue"        binding:"required,min=1,max=200"`
	Description string    `json:"description"  binding:"omitempty"`
}

// CreateSessionResponse 创建会话响应
type CreateSessionResponse struct {
	SessionID uint `json:"session_id"`
}

// CompleteSessionRequest 完成会话请求
type CompleteSessionRequest struct {
	Duration int `json:"duration" binding:"required,gt=0"`
}

// ToggleInterestResponse 兴趣切换响应
type ToggleInterestResponse struct {
	Message      string `json:"message"`
	IsInterested bool   `json:"is_interested"`
}

// SessionResponse 会话信息响应（含当前用户的兴趣标记）
type SessionResponse struct {
	SessionID       uint      `json:"session_id"`
	UserID          uint      `json:"user_id"`
	Title           string    `json:"title"`
	SessionType     string    `json:"session_type"`
	Date            time.Time `json:"date"`
	Venue           string    `json:"venue"`
	Description     string    `json:"description,omitempty"`
	IsCompleted     bool      `json:"is_completed"`
	DurationMinutes int       `json:"duration_minutes"`
	IsInterested    bool      `json:"is_interested"`
}
