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

// ── 学习小组模块业务错误 ──

var (
	ErrStudyGroupNotFound = errors.New("学习小组不存在")
)

// StudyGroupService 学习小组业务接口
type StudyGroupService interface {
	Create(ctx context.Context, req *dto.CreateStudyGroupRequest) (*dto.StudyGroupResponse, error)
	List(ctx context.Context) ([]dto.StudyGroupResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateStudyGroupRequest) (*dto.StudyGroupResponse, error)
	Delete(ctx context.Context, id uint) error
}

type studyGroupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudyGroupService 创建 StudyGroupService 实例
func NewStudyGroupService(repo *repository.Repository, logger *zap.Logger) StudyGroupService {
	return &studyGroupService{repo: repo, logger: logger}
}

func (s *studyGroupService) Create(ctx context.Context, req *dto.CreateStudyGroupRequest) (*dto.StudyGroupResponse, error) {
	// 小组必须挂在已存在的课程下
	course, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Uint("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}

	group := &model.StudyGroup{
		GroupName: req.GroupName,
		CourseID:  req.CourseID,
	}
	if err := s.repo.StudyGroup.Create(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("创建学习小组失败", zap.Error(err))
		return nil, err
	}

	group.Course = course
	return s.toStudyGroupResponse(group), nil
}

// List 返回所有小组，连带课程名
func (s *studyGroupService) List(ctx context.Context) ([]dto.StudyGroupResponse, error) {
	groups, err := s.repo.StudyGroup.List(ctx)
	if err != nil {
		s.logger.Error("列出学习小组失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudyGroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *s.toStudyGroupResponse(&groups[i]))
	}
	return result, nil
}

func (s *studyGroupService) Update(ctx context.Context, id uint, req *dto.UpdateStudyGroupRequest) (*dto.StudyGroupResponse, error) {
	group, err := s.repo.StudyGroup.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudyGroupNotFound
		}
		s.logger.Error("查询学习小组失败", zap.Uint("study_group_id", id), zap.Error(err))
		return nil, err
	}

	if req.GroupName != nil {
		group.GroupName = *req.GroupName
	}
	if req.CourseID != nil && *req.CourseID != group.CourseID {
		course, err := s.repo.Course.GetByID(ctx, *req.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourseNotFound
			}
			s.logger.Error("查询课程失败", zap.Uint("course_id", *req.CourseID), zap.Error(err))
			return nil, err
		}
		group.CourseID = *req.CourseID
		group.Course = course
	}

	if err := s.repo.StudyGroup.Update(ctx, group); err != nil {
		s.logger.Error("更新学习小组失败", zap.Uint("study_group_id", id), zap.Error(err))
		return nil, err
	}

	return s.toStudyGroupResponse(group), nil
}

func (s *studyGroupService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.StudyGroup.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudyGroupNotFound
		}
		s.logger.Error("删除学习小组失败", zap.Uint("study_group_id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *studyGroupService) toStudyGroupResponse(group *model.StudyGroup) *dto.StudyGroupResponse {
	resp := &dto.StudyGroupResponse{
		StudyGroupID: group.StudyGroupID,
		GroupName:    group.GroupName,
		CourseID:     group.CourseID,
	}
	if group.Course != nil {
		resp.CourseName = group.Course.CourseName
	}
	return resp
}
