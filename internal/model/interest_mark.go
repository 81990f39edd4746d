package model

// InterestMark 会话兴趣标记表 — 对应 session_interests
// 每个 (user_id, session_id) 至多一条记录，重复切换只翻转标志位
type InterestMark struct {
	ID           uint `gorm:"primaryKey"                                 json:"id"`
	UserID       uint `gorm:"not null;uniqueIndex:uq_session_interests"  json:"user_id"`
	SessionID    uint `gorm:"not null;uniqueIndex:uq_session_interests"  json:"session_id"`
	IsInterested bool `gorm:"not null;default:true"                      json:"is_interested"`

	// 关联
	Session *Session `gorm:"foreignKey:SessionID;references:SessionID" json:"session,omitempty"`
}

// TableName 指定表名
func (InterestMark) TableName() string { return "session_interests" }
