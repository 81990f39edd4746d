package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/model"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

// ActivityService 学习动态业务接口（只追加，无更新/删除）
type ActivityService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	List(ctx context.Context, userID uint) ([]dto.ActivityResponse, error)
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService 创建 ActivityService 实例
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

func (s *activityService) Create(ctx context.Context, userID uint, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	activity := &model.Activity{
		UserID:      userID,
		Description: req.Description,
		Subject:     req.Subject,
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.logger.Error("记录动态失败", zap.Error(err))
		return nil, err
	}

	return s.toActivityResponse(activity), nil
}

func (s *activityService) List(ctx context.Context, userID uint) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.Activity.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出动态失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		result = append(result, *s.toActivityResponse(&activities[i]))
	}
	return result, nil
}

// ── 内部辅助方法 ──

func (s *activityService) toActivityResponse(activity *model.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ActivityID:  activity.ActivityID,
		UserID:      activity.UserID,
		Description: activity.Description,
		Subject:     activity.Subject,
		CreatedAt:   activity.CreatedAt.Format(time.RFC3339),
	}
}
