package dto

// ── 统计模块 DTO ──

// StatsResponse 仪表盘聚合统计
// unreadMessages 与 userRating 为前端占位字段（无对应数据表）
type StatsResponse struct {
	ActiveGroups      int64  `json:"activeGroups"`
	ScheduledSessions int64  `json:"scheduledSessions"`
	UnreadMessages    int64  `json:"unreadMessages"`
	UserRating        string `json:"userRating"`
}

// StudyTimeEntry 某天的已完成学习时长（分钟）
type StudyTimeEntry struct {
	Day          string `json:"day"`
	TotalMinutes int    `json:"total_minutes"`
}
