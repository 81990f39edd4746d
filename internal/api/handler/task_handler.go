package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// TaskHandler 任务模块 HTTP 处理器
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler 创建 TaskHandler
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// CreateTask 创建任务
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.taskSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListTasks 列出当前用户的全部任务
// GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.taskSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateTask 更新任务（部分更新，仅归属用户）
// PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.taskSvc.Update(c.Request.Context(), taskID, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.NotFound(c, 14101, "任务不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteTask 删除任务（仅归属用户）
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), taskID, userID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.NotFound(c, 14101, "任务不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
