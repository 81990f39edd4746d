package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// ActivityHandler 学习动态模块 HTTP 处理器
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler 创建 ActivityHandler
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// CreateActivity 记录一条学习动态
// POST /activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.activitySvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListActivities 列出当前用户的全部动态（新到旧）
// GET /activities
// GET /user/activities（前端历史别名）
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.activitySvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
