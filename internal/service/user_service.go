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

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound = errors.New("用户不存在")
	// ErrForbidden 已认证但无权操作目标资源
	ErrForbidden = errors.New("无权操作该资源")
)

// UserService 用户业务接口
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error)
	Update(ctx context.Context, targetID, callerID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, targetID, callerID uint) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Update 仅允许本人更新自己的资料；缺省字段保持原值
func (s *userService) Update(ctx context.Context, targetID, callerID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if targetID != callerID {
		return nil, ErrForbidden
	}

	user, err := s.repo.User.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Uint("user_id", targetID), zap.Error(err))
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		// 换绑邮箱需重查唯一性
		if other, err := s.repo.User.GetByEmail(ctx, *req.Email); err == nil && other.UserID != user.UserID {
			return nil, ErrEmailTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询用户失败", zap.Error(err))
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("更新用户失败", zap.Uint("user_id", targetID), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Delete 仅允许本人注销账户；关联数据通过外键级联删除
func (s *userService) Delete(ctx context.Context, targetID, callerID uint) error {
	if targetID != callerID {
		return ErrForbidden
	}

	if err := s.repo.User.Delete(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("删除用户失败", zap.Uint("user_id", targetID), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:         user.UserID,
		Name:           user.Name,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		Role:           user.Role,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}
