package model

// Announcement 公告表 — 对应 announcements
// 全局可见，不归属任何用户
type Announcement struct {
	AnnouncementID uint   `gorm:"primaryKey"                 json:"announcement_id"`
	Title          string `gorm:"type:varchar(200);not null" json:"title"`
	Content        string `gorm:"type:text;not null"         json:"content"`
	BaseModel
}

// TableName 指定表名
func (Announcement) TableName() string { return "announcements" }
