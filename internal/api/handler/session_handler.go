package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// SessionHandler 会话模块 HTTP 处理器
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler 创建 SessionHandler
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSession 创建会话
// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.sessionSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListAllSessions 列出全部会话（连带当前用户兴趣标记）
// GET /sessions/all
func (h *SessionHandler) ListAllSessions(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.sessionSvc.ListAll(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListInterestedSessions 列出当前用户感兴趣的会话
// GET /sessions/interested
func (h *SessionHandler) ListInterestedSessions(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.sessionSvc.ListInterested(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ToggleInterest 切换兴趣标记（幂等翻转）
// POST /sessions/:id/interested
func (h *SessionHandler) ToggleInterest(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.sessionSvc.ToggleInterest(c.Request.Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, 14001, "会话不存在或已完成")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CompleteSession 标记会话完成并记录时长（仅归属用户）
// PUT /sessions/:id/complete
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CompleteSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.sessionSvc.Complete(c.Request.Context(), sessionID, userID, &req); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, 14001, "会话不存在或已完成")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// DeleteSession 删除会话（仅归属用户）
// DELETE /sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sessionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sessionSvc.Delete(c.Request.Context(), sessionID, userID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, 14001, "会话不存在或已完成")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
