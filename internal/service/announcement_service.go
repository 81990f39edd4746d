package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/model"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

// ── 公告模块业务错误 ──

var (
	ErrAnnouncementNotFound = errors.New("公告不存在")
)

// AnnouncementService 公告业务接口
// 读取对所有登录用户开放；写入由路由层限定 admin 角色
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	List(ctx context.Context) ([]dto.AnnouncementResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id uint) error
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	announcement := &model.Announcement{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.repo.Announcement.Create(ctx, announcement); err != nil {
		s.logger.Error("发布公告失败", zap.Error(err))
		return nil, err
	}

	return s.toAnnouncementResponse(announcement), nil
}

func (s *announcementService) List(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	announcements, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("列出公告失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		result = append(result, *s.toAnnouncementResponse(&announcements[i]))
	}
	return result, nil
}

func (s *announcementService) Update(ctx context.Context, id uint, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	announcement, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("查询公告失败", zap.Uint("announcement_id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Content != nil {
		announcement.Content = *req.Content
	}

	if err := s.repo.Announcement.Update(ctx, announcement); err != nil {
		s.logger.Error("更新公告失败", zap.Uint("announcement_id", id), zap.Error(err))
		return nil, err
	}

	return s.toAnnouncementResponse(announcement), nil
}

func (s *announcementService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		s.logger.Error("删除公告失败", zap.Uint("announcement_id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *announcementService) toAnnouncementResponse(announcement *model.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		AnnouncementID: announcement.AnnouncementID,
		Title:          announcement.Title,
		Content:        announcement.Content,
		CreatedAt:      announcement.CreatedAt.Format(time.RFC3339),
	}
}
