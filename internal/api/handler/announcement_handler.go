package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// AnnouncementHandler 公告模块 HTTP 处理器
// 写入操作由路由层限定 admin 角色
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// CreateAnnouncement 发布公告
// POST /announcements
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.announcementSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListAnnouncements 列出全部公告（新到旧）
// GET /announcements
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	result, err := h.announcementSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateAnnouncement 更新公告
// PUT /announcements/:id
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.announcementSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, 15001, "公告不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteAnnouncement 删除公告
// DELETE /announcements/:id
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.announcementSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, 15001, "公告不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
