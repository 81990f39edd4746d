package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/model"
)

// SessionWithInterest 会话行 + 当前用户的兴趣标记（LEFT JOIN 扫描结构）
type SessionWithInterest struct {
	model.Session `gorm:"embedded"`
	IsInterested  bool `json:"is_interested"`
}

// StudyTimeRow 按天聚合的已完成学习分钟数
type StudyTimeRow struct {
	Day          string
	TotalMinutes int
}

// SessionRepository 会话数据访问接口
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id uint) (*model.Session, error)
	ListAllWithInterest(ctx context.Context, userID uint) ([]SessionWithInterest, error)
	ListInterested(ctx context.Context, userID uint) ([]SessionWithInterest, error)
	ToggleInterest(ctx context.Context, userID, sessionID uint) (bool, error)
	Complete(ctx context.Context, sessionID, userID uint, durationMinutes int) error
	DeleteOwned(ctx context.Context, sessionID, userID uint) error
	CountScheduledByUser(ctx context.Context, userID uint) (int64, error)
	StudyTimeByDay(ctx context.Context, userID uint, since time.Time) ([]StudyTimeRow, error)
}

// sessionRepo SessionRepository 的 GORM 实现
type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id uint) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("session_id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListAllWithInterest 返回全部会话，连带当前用户的兴趣标记
func (r *sessionRepo) ListAllWithInterest(ctx context.Context, userID uint) ([]SessionWithInterest, error) {
	var rows []SessionWithInterest
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("sessions.*, COALESCE(si.is_interested, FALSE) AS is_interested").
		Joins("LEFT JOIN session_interests si ON si.session_id = sessions.session_id AND si.user_id = ?", userID).
		Order("sessions.date ASC").
		Scan(&rows).Error
	return rows, err
}

// ListInterested 返回当前用户标记了兴趣的会话
func (r *sessionRepo) ListInterested(ctx context.Context, userID uint) ([]SessionWithInterest, error) {
	var rows []SessionWithInterest
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("sessions.*, si.is_interested AS is_interested").
		Joins("JOIN session_interests si ON si.session_id = sessions.session_id").
		Where("si.user_id = ? AND si.is_interested = ?", userID, true).
		Order("sessions.date ASC").
		Scan(&rows).Error
	return rows, err
}

// ToggleInterest 切换兴趣标记
// 查找-翻转/插入 序列在单个事务内执行，避免并发切换产生重复行或丢失更新；
// 表上的 (user_id, session_id) 唯一约束兜底。
// 会话不存在或已完成时返回 gorm.ErrRecordNotFound。
func (r *sessionRepo) ToggleInterest(ctx context.Context, userID, sessionID uint) (bool, error) {
	var interested bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session model.Session
		if err := tx.
			Where("session_id = ? AND is_completed = ?", sessionID, false).
			First(&session).Error; err != nil {
			return err
		}

		var mark model.InterestMark
		err := tx.
			Where("user_id = ? AND session_id = ?", userID, sessionID).
			First(&mark).Error
		switch {
		case err == nil:
			// 已有记录：原地翻转标志位
			mark.IsInterested = !mark.IsInterested
			if err := tx.Model(&model.InterestMark{}).
				Where("id = ?", mark.ID).
				Update("is_interested", mark.IsInterested).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 首次标记：插入 interested=true
			mark = model.InterestMark{UserID: userID, SessionID: sessionID, IsInterested: true}
			if err := tx.Create(&mark).Error; err != nil {
				return err
			}
		default:
			return err
		}

		interested = mark.IsInterested
		return nil
	})

	return interested, err
}

// Complete 将会话标记为已完成并记录时长，按归属用户限定范围
func (r *sessionRepo) Complete(ctx context.Context, sessionID, userID uint, durationMinutes int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Updates(map[string]interface{}{
			"is_completed":     true,
			"duration_minutes": durationMinutes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned 删除归属当前用户的会话；兴趣标记通过外键级联清理
func (r *sessionRepo) DeleteOwned(ctx context.Context, sessionID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Delete(&model.Session{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sessionRepo) CountScheduledByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Count(&total).Error
	return total, err
}

// StudyTimeByDay 按天汇总已完成会话的分钟数（since 起）
func (r *sessionRepo) StudyTimeByDay(ctx context.Context, userID uint, since time.Time) ([]StudyTimeRow, error) {
	var rows []StudyTimeRow
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("to_char(date, 'YYYY-MM-DD') AS day, COALESCE(SUM(duration_minutes), 0) AS total_minutes").
		Where("user_id = ? AND is_completed = ? AND date >= ?", userID, true, since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}
