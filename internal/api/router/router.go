package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/config"
	"github.com/iamaayush710/Study-Buds/internal/api/handler"
	"github.com/iamaayush710/Study-Buds/internal/api/middleware"
	"github.com/iamaayush710/Study-Buds/pkg/jwt"
	"github.com/iamaayush710/Study-Buds/pkg/redis"
)

// maxBodyBytes 全局请求体上限（1MB，接口均为小 JSON 载荷）
const maxBodyBytes = 1 << 20

// 登录/注册接口的速率限制：每 IP 每分钟 10 次
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
// 路径与前端约定保持一致，挂在根路径下（无 /api/v1 前缀）
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Study-Buds API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── 认证模块（无需认证，带速率限制） ──
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(rdb, authRateLimit, authRateWindow))
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// ── 公开只读路由 ──
	r.GET("/courses", h.Course.ListCourses)
	r.GET("/study-groups", h.StudyGroup.ListStudyGroups)

	// ── 选课 / 小组成员（与前端约定：不做认证校验） ──
	userCourses := r.Group("/user-courses")
	{
		userCourses.POST("", h.Roster.Enroll)
		userCourses.GET("/:userId", h.Roster.ListUserCourses)
		userCourses.DELETE("/:userId/:courseId", h.Roster.Unenroll)
	}
	groupMembers := r.Group("/study-group-members")
	{
		groupMembers.POST("", h.Roster.JoinGroup)
		groupMembers.GET("/:groupId", h.Roster.ListGroupMembers)
		groupMembers.DELETE("/:groupId/:userId", h.Roster.LeaveGroup)
	}

	// ── 需要认证的路由 ──
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		authorized.POST("/auth/logout", h.Auth.Logout)

		// 用户模块
		authorized.GET("/user/profile", h.User.GetProfile)
		authorized.PUT("/users/:id", h.User.UpdateUser)       // 仅本人（Service 层鉴权）
		authorized.DELETE("/users/:id", h.User.DeleteUser)    // 仅本人（Service 层鉴权）

		// 课程 / 小组写操作
		authorized.POST("/courses", h.Course.CreateCourse)
		authorized.PUT("/courses/:id", h.Course.UpdateCourse)
		authorized.DELETE("/courses/:id", h.Course.DeleteCourse)
		authorized.POST("/study-groups", h.StudyGroup.CreateStudyGroup)
		authorized.PUT("/study-groups/:id", h.StudyGroup.UpdateStudyGroup)
		authorized.DELETE("/study-groups/:id", h.StudyGroup.DeleteStudyGroup)

		// 会话模块
		sessions := authorized.Group("/sessions")
		{
			sessions.POST("", h.Session.CreateSession)
			sessions.GET("/all", h.Session.ListAllSessions)
			sessions.GET("/interested", h.Session.ListInterestedSessions)
			sessions.POST("/:id/interested", h.Session.ToggleInterest)
			sessions.PUT("/:id/complete", h.Session.CompleteSession)
			sessions.DELETE("/:id", h.Session.DeleteSession)
		}

		// 任务模块
		tasks := authorized.Group("/tasks")
		{
			tasks.POST("", h.Task.CreateTask)
			tasks.GET("", h.Task.ListTasks)
			tasks.PUT("/:id", h.Task.UpdateTask)
			tasks.DELETE("/:id", h.Task.DeleteTask)
		}

		// 学习动态模块
		authorized.POST("/activities", h.Activity.CreateActivity)
		authorized.GET("/activities", h.Activity.ListActivities)
		authorized.GET("/user/activities", h.Activity.ListActivities) // 前端历史别名

		// 公告模块（写操作限 admin）
		authorized.GET("/announcements", h.Announcement.ListAnnouncements)
		authorized.POST("/announcements", middleware.RoleAuth("admin"), h.Announcement.CreateAnnouncement)
		authorized.PUT("/announcements/:id", middleware.RoleAuth("admin"), h.Announcement.UpdateAnnouncement)
		authorized.DELETE("/announcements/:id", middleware.RoleAuth("admin"), h.Announcement.DeleteAnnouncement)

		// 统计模块
		authorized.GET("/user/stats", h.Stats.GetStats)
		authorized.GET("/user/study-time", h.Stats.GetStudyTime)

		// 导出模块
		export := authorized.Group("/export")
		{
			export.GET("/tasks", h.Export.ExportTasks)
			export.GET("/calendar", h.Export.ExportCalendar)
		}
	}

	return r
}
