package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/iamaayush710/Study-Buds/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "未认证")
		return 0, false
	}
	return id, true
}

// bindJSON 绑定并校验请求体。
// 校验失败时写入 400 响应（附字段级错误列表）并返回 false。
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			fieldErrs := make([]response.FieldError, 0, len(vErrs))
			for _, fe := range vErrs {
				fieldErrs = append(fieldErrs, response.FieldError{
					Field:   fe.Field(),
					Message: fe.Tag(),
				})
			}
			response.ValidationFailed(c, fieldErrs)
			return false
		}
		response.BadRequest(c, 10001, "参数校验失败")
		return false
	}
	return true
}

// parseIDParam 解析路径参数中的数字 ID。
// 非法时写入 400 响应并返回 false。
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, name+" 参数无效")
		return 0, false
	}
	return uint(id), true
}
