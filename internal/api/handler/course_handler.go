package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// CreateCourse 创建课程
// POST /courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListCourses 列出全部课程
// GET /courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	result, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateCourse 更新课程
// PUT /courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.courseSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, 13001, "课程不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteCourse 删除课程（级联删除小组与选课记录）
// DELETE /courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.NotFound(c, 13001, "课程不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
