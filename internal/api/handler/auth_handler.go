package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/service"
	"github.com/iamaayush710/Study-Buds/pkg/jwt"
	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 用户注册
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, 11002, "邮箱已被注册")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Login 用户登录
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 与前端约定：凭证错误返回 400（401/403 保留给认证头缺失与 Token 失效）
			response.BadRequest(c, 11001, "邮箱或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 用户登出：将当前 Token 的 JTI 加入黑名单
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims.ExpiresAt == nil {
		response.Unauthorized(c, 10002, "未认证")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
