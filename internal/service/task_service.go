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

// ── 任务模块业务错误 ──

var (
	// ErrTaskNotFound 不存在或不归属当前用户时统一返回
	ErrTaskNotFound = errors.New("任务不存在")
)

// TaskService 任务业务接口
type TaskService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(ctx context.Context, userID uint) ([]dto.TaskResponse, error)
	Update(ctx context.Context, taskID, userID uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, taskID, userID uint) error
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskService 创建 TaskService 实例
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

func (s *taskService) Create(ctx context.Context, userID uint, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Subject:     req.Subject,
		Priority:    req.Priority,
	}

	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.logger.Error("创建任务失败", zap.Error(err))
		return nil, err
	}

	return s.toTaskResponse(task), nil
}

func (s *taskService) List(ctx context.Context, userID uint) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.Task.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("列出任务失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, *s.toTaskResponse(&tasks[i]))
	}
	return result, nil
}

// Update 部分更新：缺省字段保持原值；按归属用户限定范围
func (s *taskService) Update(ctx context.Context, taskID, userID uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.repo.Task.GetOwned(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("查询任务失败", zap.Uint("task_id", taskID), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Subject != nil {
		task.Subject = *req.Subject
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.IsCompleted != nil {
		task.IsCompleted = *req.IsCompleted
	}

	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.logger.Error("更新任务失败", zap.Uint("task_id", taskID), zap.Error(err))
		return nil, err
	}

	return s.toTaskResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, taskID, userID uint) error {
	if err := s.repo.Task.DeleteOwned(ctx, taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		s.logger.Error("删除任务失败", zap.Uint("task_id", taskID), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *taskService) toTaskResponse(task *model.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		TaskID:      task.TaskID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Subject:     task.Subject,
		Priority:    task.Priority,
		IsCompleted: task.IsCompleted,
	}
}
