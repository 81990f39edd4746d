package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Course       CourseRepository
	StudyGroup   StudyGroupRepository
	Enrollment   EnrollmentRepository
	Membership   MembershipRepository
	Session      SessionRepository
	Task         TaskRepository
	Activity     ActivityRepository
	Announcement AnnouncementRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Course:       NewCourseRepo(db),
		StudyGroup:   NewStudyGroupRepo(db),
		Enrollment:   NewEnrollmentRepo(db),
		Membership:   NewMembershipRepo(db),
		Session:      NewSessionRepo(db),
		Task:         NewTaskRepo(db),
		Activity:     NewActivityRepo(db),
		Announcement: NewAnnouncementRepo(db),
	}
}
