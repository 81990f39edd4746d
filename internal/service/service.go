package service

import (
	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/config"
	"github.com/iamaayush710/Study-Buds/internal/repository"
	"github.com/iamaayush710/Study-Buds/pkg/jwt"
	"github.com/iamaayush710/Study-Buds/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	User         UserService
	Course       CourseService
	StudyGroup   StudyGroupService
	Roster       RosterService
	Session      SessionService
	Task         TaskService
	Activity     ActivityService
	Announcement AnnouncementService
	Stats        StatsService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Course:       NewCourseService(repo, logger),
		StudyGroup:   NewStudyGroupService(repo, logger),
		Roster:       NewRosterService(repo, logger),
		Session:      NewSessionService(repo, logger),
		Task:         NewTaskService(repo, logger),
		Activity:     NewActivityService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Stats:        NewStatsService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
