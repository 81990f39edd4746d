package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// StudyGroupHandler 学习小组模块 HTTP 处理器
type StudyGroupHandler struct {
	groupSvc service.StudyGroupService
}

// NewStudyGroupHandler 创建 StudyGroupHandler
func NewStudyGroupHandler(groupSvc service.StudyGroupService) *StudyGroupHandler {
	return &StudyGroupHandler{groupSvc: groupSvc}
}

// CreateStudyGroup 创建学习小组
// POST /study-groups
func (h *StudyGroupHandler) CreateStudyGroup(c *gin.Context) {
	var req dto.CreateStudyGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, 13001, "课程不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListStudyGroups 列出全部学习小组（连带课程名）
// GET /study-groups
func (h *StudyGroupHandler) ListStudyGroups(c *gin.Context) {
	result, err := h.groupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateStudyGroup 更新学习小组
// PUT /study-groups/:id
func (h *StudyGroupHandler) UpdateStudyGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudyGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.groupSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudyGroupNotFound):
			response.NotFound(c, 13101, "学习小组不存在")
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, 13001, "课程不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// DeleteStudyGroup 删除学习小组（级联删除成员记录）
// DELETE /study-groups/:id
func (h *StudyGroupHandler) DeleteStudyGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.groupSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudyGroupNotFound) {
			response.NotFound(c, 13101, "学习小组不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
