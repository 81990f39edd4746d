package dto

// ── 公告模块 DTO ──

// CreateAnnouncementRequest 发布公告请求
type CreateAnnouncementRequest struct {
	Title   string `json:"title"   binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1"`
}

// UpdateAnnouncementRequest 更新公告请求
type UpdateAnnouncementRequest struct {
	Title   *string `json:"title"   binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}

// AnnouncementResponse 公告信息响应
type AnnouncementResponse struct {
	AnnouncementID uint   `json:"announcement_id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at"`
}
