package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

// studyTimeDays 学习时长统计的窗口天数（含今天）
const studyTimeDays = 7

// StatsService 统计业务接口
type StatsService interface {
	GetStats(ctx context.Context, userID uint) (*dto.StatsResponse, error)
	GetStudyTime(ctx context.Context, userID uint) ([]dto.StudyTimeEntry, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
	// now 可替换的时钟，便于测试固定日期
	now func() time.Time
}

// NewStatsService 创建 StatsService 实例
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger, now: time.Now}
}

// GetStats 仪表盘聚合统计
// unreadMessages / userRating 为前端占位字段，无对应数据表
func (s *statsService) GetStats(ctx context.Context, userID uint) (*dto.StatsResponse, error) {
	groups, err := s.repo.Membership.CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error("统计小组数失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	sessions, err := s.repo.Session.CountScheduledByUser(ctx, userID)
	if err != nil {
		s.logger.Error("统计会话数失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.StatsResponse{
		ActiveGroups:      groups,
		ScheduledSessions: sessions,
		UnreadMessages:    0,
		UserRating:        "N/A",
	}, nil
}

// GetStudyTime 最近 7 天每天的已完成学习分钟数，无记录的天补零
func (s *statsService) GetStudyTime(ctx context.Context, userID uint) ([]dto.StudyTimeEntry, error) {
	// 按本地时区取当天零点，Truncate 会截断到 UTC 日界
	n := s.now()
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
	since := today.AddDate(0, 0, -(studyTimeDays - 1))

	rows, err := s.repo.Session.StudyTimeByDay(ctx, userID, since)
	if err != nil {
		s.logger.Error("统计学习时长失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	byDay := make(map[string]int, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r.TotalMinutes
	}

	result := make([]dto.StudyTimeEntry, 0, studyTimeDays)
	for i := 0; i < studyTimeDays; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		result = append(result, dto.StudyTimeEntry{
			Day:          day,
			TotalMinutes: byDay[day],
		})
	}
	return result, nil
}
