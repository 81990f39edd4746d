package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// RosterHandler 选课与小组成员模块 HTTP 处理器
type RosterHandler struct {
	rosterSvc service.RosterService
}

// NewRosterHandler 创建 RosterHandler
func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

// ── 选课 ──

// Enroll 选课
// POST /user-courses
func (h *RosterHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.rosterSvc.Enroll(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyEnrolled):
			response.BadRequest(c, 13201, "已选过该课程")
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, 13001, "课程不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// ListUserCourses 列出某用户的全部选课（连带课程信息）
// GET /user-courses/:userId
func (h *RosterHandler) ListUserCourses(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	result, err := h.rosterSvc.ListUserCourses(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Unenroll 退课
// DELETE /user-courses/:userId/:courseId
func (h *RosterHandler) Unenroll(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	if err := h.rosterSvc.Unenroll(c.Request.Context(), userID, courseID); err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			response.NotFound(c, 13202, "选课记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ── 小组成员 ──

// JoinGroup 加入学习小组
// POST /study-group-members
func (h *RosterHandler) JoinGroup(c *gin.Context) {
	var req dto.JoinGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.rosterSvc.JoinGroup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyMember):
			response.BadRequest(c, 13301, "已是该小组成员")
		case errors.Is(err, service.ErrStudyGroupNotFound):
			response.NotFound(c, 13101, "学习小组不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// ListGroupMembers 列出某小组的全部成员（连带用户信息）
// GET /study-group-members/:groupId
func (h *RosterHandler) ListGroupMembers(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}

	result, err := h.rosterSvc.ListGroupMembers(c.Request.Context(), groupID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// LeaveGroup 退出学习小组
// DELETE /study-group-members/:groupId/:userId
func (h *RosterHandler) LeaveGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "groupId")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.rosterSvc.LeaveGroup(c.Request.Context(), groupID, userID); err != nil {
		if errors.Is(err, service.ErrMembershipNotFound) {
			response.NotFound(c, 13302, "成员记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
