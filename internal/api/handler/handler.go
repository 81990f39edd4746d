package handler

import "github.com/iamaayush710/Study-Buds/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Course       *CourseHandler
	StudyGroup   *StudyGroupHandler
	Roster       *RosterHandler
	Session      *SessionHandler
	Task         *TaskHandler
	Activity     *ActivityHandler
	Announcement *AnnouncementHandler
	Stats        *StatsHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Course:       NewCourseHandler(svc.Course),
		StudyGroup:   NewStudyGroupHandler(svc.StudyGroup),
		Roster:       NewRosterHandler(svc.Roster),
		Session:      NewSessionHandler(svc.Session),
		Task:         NewTaskHandler(svc.Task),
		Activity:     NewActivityHandler(svc.Activity),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Stats:        NewStatsHandler(svc.Stats),
		Export:       NewExportHandler(svc.Export),
	}
}
