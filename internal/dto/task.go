package dto

import "time"

// ── 任务模块 DTO ──

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	Title       string     `json:"title"       binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"omitempty"`
	DueDate     *time.Time `json:"due_date"    binding:"omitempty"`
	Subject     string     `json:"subject"     binding:"omitempty,max=100"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest 更新任务请求（部分更新，缺省字段保持原值）
type UpdateTaskRequest struct {
	Title       *string    `json:"title"        binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description"  binding:"omitempty"`
	DueDate     *time.Time `json:"due_date"     binding:"omitempty"`
	Subject     *string    `json:"subject"      binding:"omitempty,max=100"`
	Priority    *string    `json:"priority"     binding:"omitempty,oneof=low medium high"`
	IsCompleted *bool      `json:"is_completed"`
}

// TaskResponse 任务信息响应
type TaskResponse struct {
	TaskID      uint       `json:"task_id"`
	UserID      uint       `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	IsCompleted bool       `json:"is_completed"`
}
