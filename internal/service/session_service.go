package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/model"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

// ── 会话模块业务错误 ──

var (
	// ErrSessionNotFound 不存在、已完成、或不归属当前用户时统一返回
	ErrSessionNotFound = errors.New("会话不存在或已完成")
)

// 兴趣切换响应文案（与前端约定一致）
const (
	msgInterested      = "Marked as interested!"
	msgInterestRemoved = "Interest removed!"
)

// SessionService 会话业务接口
type SessionService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	ListAll(ctx context.Context, userID uint) ([]dto.SessionResponse, error)
	ListInterested(ctx context.Context, userID uint) ([]dto.SessionResponse, error)
	ToggleInterest(ctx context.Context, userID, sessionID uint) (*dto.ToggleInterestResponse, error)
	Complete(ctx context.Context, sessionID, userID uint, req *dto.CompleteSessionRequest) error
	Delete(ctx context.Context, sessionID, userID uint) error
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

func (s *sessionService) Create(ctx context.Context, userID uint, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	session := &model.Session{
		UserID:      userID,
		Title:       req.Title,
		SessionType: req.SessionType,
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("创建会话失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateSessionResponse{SessionID: session.SessionID}, nil
}

// ListAll 返回全部会话，连带当前用户的兴趣标记
func (s *sessionService) ListAll(ctx context.Context, userID uint) ([]dto.SessionResponse, error) {
	rows, err := s.repo.Session.ListAllWithInterest(ctx, userID)
	if err != nil {
		s.logger.Error("列出会话失败", zap.Error(err))
		return nil, err
	}
	return toSessionResponses(rows), nil
}

// ListInterested 返回当前用户标记了兴趣的会话
func (s *sessionService) ListInterested(ctx context.Context, userID uint) ([]dto.SessionResponse, error) {
	rows, err := s.repo.Session.ListInterested(ctx, userID)
	if err != nil {
		s.logger.Error("列出感兴趣会话失败", zap.Error(err))
		return nil, err
	}
	return toSessionResponses(rows), nil
}

// ToggleInterest 切换兴趣标记：首次创建 interested=true，再次原地翻转
func (s *sessionService) ToggleInterest(ctx context.Context, userID, sessionID uint) (*dto.ToggleInterestResponse, error) {
	interested, err := s.repo.Session.ToggleInterest(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("切换兴趣标记失败",
			zap.Uint("session_id", sessionID),
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	msg := msgInterestRemoved
	if interested {
		msg = msgInterested
	}
	return &dto.ToggleInterestResponse{Message: msg, IsInterested: interested}, nil
}

// Complete 仅归属用户可标记完成并记录时长
func (s *sessionService) Complete(ctx context.Context, sessionID, userID uint, req *dto.CompleteSessionRequest) error {
	if err := s.repo.Session.Complete(ctx, sessionID, userID, req.Duration); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("完成会话失败", zap.Uint("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// Delete 仅归属用户可删除
func (s *sessionService) Delete(ctx context.Context, sessionID, userID uint) error {
	if err := s.repo.Session.DeleteOwned(ctx, sessionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("删除会话失败", zap.Uint("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toSessionResponses(rows []repository.SessionWithInterest) []dto.SessionResponse {
	result := make([]dto.SessionResponse, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		result = append(result, dto.SessionResponse{
			SessionID:       r.SessionID,
			UserID:          r.UserID,
			Title:           r.Title,
			SessionType:     r.SessionType,
			Date:            r.Date,
			Venue:           r.Venue,
			Description:     r.Description,
			IsCompleted:     r.IsCompleted,
			DurationMinutes: r.DurationMinutes,
			IsInterested:    r.IsInterested,
		})
	}
	return result
}
