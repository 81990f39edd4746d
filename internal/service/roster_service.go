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

// ── 选课 / 小组成员模块业务错误 ──

var (
	ErrEnrollmentNotFound = errors.New("选课记录不存在")
	ErrMembershipNotFound = errors.New("成员记录不存在")
	ErrAlreadyEnrolled    = errors.New("已选过该课程")
	ErrAlreadyMember      = errors.New("已是该小组成员")
)

// RosterService 选课与小组成员业务接口
type RosterService interface {
	Enroll(ctx context.Context, req *dto.EnrollRequest) (*model.Enrollment, error)
	ListUserCourses(ctx context.Context, userID uint) ([]model.Enrollment, error)
	Unenroll(ctx context.Context, userID, courseID uint) error

	JoinGroup(ctx context.Context, req *dto.JoinGroupRequest) (*model.Membership, error)
	ListGroupMembers(ctx context.Context, groupID uint) ([]model.Membership, error)
	LeaveGroup(ctx context.Context, groupID, userID uint) error
}

type rosterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, logger: logger}
}

// ── 选课 ──

func (s *rosterService) Enroll(ctx context.Context, req *dto.EnrollRequest) (*model.Enrollment, error) {
	enrollment := &model.Enrollment{
		UserID:   req.UserID,
		CourseID: req.CourseID,
	}
	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrAlreadyEnrolled
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, ErrCourseNotFound
		}
		s.logger.Error("创建选课记录失败", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}

func (s *rosterService) ListUserCourses(ctx context.Context, userID uint) ([]model.Enrollment, error) {
	enrollments, err := s.repo.Enrollment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出选课记录失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

func (s *rosterService) Unenroll(ctx context.Context, userID, courseID uint) error {
	if err := s.repo.Enrollment.Delete(ctx, userID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		s.logger.Error("删除选课记录失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 小组成员 ──

func (s *rosterService) JoinGroup(ctx context.Context, req *dto.JoinGroupRequest) (*model.Membership, error) {
	membership := &model.Membership{
		StudyGroupID: req.StudyGroupID,
		UserID:       req.UserID,
	}
	if err := s.repo.Membership.Create(ctx, membership); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrAlreadyMember
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, ErrStudyGroupNotFound
		}
		s.logger.Error("创建成员记录失败", zap.Error(err))
		return nil, err
	}
	return membership, nil
}

func (s *rosterService) ListGroupMembers(ctx context.Context, groupID uint) ([]model.Membership, error) {
	memberships, err := s.repo.Membership.ListByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("列出成员记录失败", zap.Uint("study_group_id", groupID), zap.Error(err))
		return nil, err
	}
	return memberships, nil
}

func (s *rosterService) LeaveGroup(ctx context.Context, groupID, userID uint) error {
	if err := s.repo.Membership.Delete(ctx, groupID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}
		s.logger.Error("删除成员记录失败", zap.Error(err))
		return err
	}
	return nil
}
