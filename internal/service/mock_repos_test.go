package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/model"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

// ── Mock Repositories ──
// 与 GORM 实现保持一致的语义：未命中返回 gorm.ErrRecordNotFound，
// 违反唯一约束返回 gorm.ErrDuplicatedKey。

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == 0 {
		user.UserID = m.nextID
		m.nextID++
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email && u.UserID != user.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

type mockCourseRepo struct {
	courses map[uint]*model.Course
	nextID  uint
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == 0 {
		course.CourseID = m.nextID
		m.nextID++
	}
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, id)
	return nil
}

type mockStudyGroupRepo struct {
	groups map[uint]*model.StudyGroup
	nextID uint
}

func newMockStudyGroupRepo() *mockStudyGroupRepo {
	return &mockStudyGroupRepo{groups: make(map[uint]*model.StudyGroup), nextID: 1}
}

func (m *mockStudyGroupRepo) Create(_ context.Context, group *model.StudyGroup) error {
	if group.StudyGroupID == 0 {
		group.StudyGroupID = m.nextID
		m.nextID++
	}
	m.groups[group.StudyGroupID] = group
	return nil
}

func (m *mockStudyGroupRepo) GetByID(_ context.Context, id uint) (*model.StudyGroup, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudyGroupRepo) List(_ context.Context) ([]model.StudyGroup, error) {
	result := make([]model.StudyGroup, 0, len(m.groups))
	for _, g := range m.groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudyGroupID < result[j].StudyGroupID })
	return result, nil
}

func (m *mockStudyGroupRepo) Update(_ context.Context, group *model.StudyGroup) error {
	m.groups[group.StudyGroupID] = group
	return nil
}

func (m *mockStudyGroupRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.groups[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.groups, id)
	return nil
}

type mockEnrollmentRepo struct {
	enrollments map[uint]*model.Enrollment
	nextID      uint
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[uint]*model.Enrollment), nextID: 1}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	for _, e := range m.enrollments {
		if e.UserID == enrollment.UserID && e.CourseID == enrollment.CourseID {
			return gorm.ErrDuplicatedKey
		}
	}
	enrollment.ID = m.nextID
	m.nextID++
	m.enrollments[enrollment.ID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) ListByUser(_ context.Context, userID uint) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, userID, courseID uint) error {
	for id, e := range m.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			delete(m.enrollments, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockMembershipRepo struct {
	memberships map[uint]*model.Membership
	nextID      uint
}

func newMockMembershipRepo() *mockMembershipRepo {
	return &mockMembershipRepo{memberships: make(map[uint]*model.Membership), nextID: 1}
}

func (m *mockMembershipRepo) Create(_ context.Context, membership *model.Membership) error {
	for _, ms := range m.memberships {
		if ms.StudyGroupID == membership.StudyGroupID && ms.UserID == membership.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	membership.ID = m.nextID
	m.nextID++
	m.memberships[membership.ID] = membership
	return nil
}

func (m *mockMembershipRepo) ListByGroup(_ context.Context, groupID uint) ([]model.Membership, error) {
	var result []model.Membership
	for _, ms := range m.memberships {
		if ms.StudyGroupID == groupID {
			result = append(result, *ms)
		}
	}
	return result, nil
}

func (m *mockMembershipRepo) CountByUser(_ context.Context, userID uint) (int64, error) {
	var total int64
	for _, ms := range m.memberships {
		if ms.UserID == userID {
			total++
		}
	}
	return total, nil
}

func (m *mockMembershipRepo) Delete(_ context.Context, groupID, userID uint) error {
	for id, ms := range m.memberships {
		if ms.StudyGroupID == groupID && ms.UserID == userID {
			delete(m.memberships, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type interestKey struct {
	userID    uint
	sessionID uint
}

type mockSessionRepo struct {
	sessions map[uint]*model.Session
	marks    map[interestKey]*model.InterestMark
	nextID   uint
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		sessions: make(map[uint]*model.Session),
		marks:    make(map[interestKey]*model.InterestMark),
		nextID:   1,
	}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.Session) error {
	if session.SessionID == 0 {
		session.SessionID = m.nextID
		m.nextID++
	}
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id uint) (*model.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) ListAllWithInterest(_ context.Context, userID uint) ([]repository.SessionWithInterest, error) {
	var result []repository.SessionWithInterest
	for _, s := range m.sessions {
		row := repository.SessionWithInterest{Session: *s}
		if mark, ok := m.marks[interestKey{userID, s.SessionID}]; ok {
			row.IsInterested = mark.IsInterested
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockSessionRepo) ListInterested(_ context.Context, userID uint) ([]repository.SessionWithInterest, error) {
	var result []repository.SessionWithInterest
	for _, s := range m.sessions {
		if mark, ok := m.marks[interestKey{userID, s.SessionID}]; ok && mark.IsInterested {
			result = append(result, repository.SessionWithInterest{Session: *s, IsInterested: true})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockSessionRepo) ToggleInterest(_ context.Context, userID, sessionID uint) (bool, error) {
	session, ok := m.sessions[sessionID]
	if !ok || session.IsCompleted {
		return false, gorm.ErrRecordNotFound
	}

	key := interestKey{userID, sessionID}
	if mark, ok := m.marks[key]; ok {
		mark.IsInterested = !mark.IsInterested
		return mark.IsInterested, nil
	}
	m.marks[key] = &model.InterestMark{UserID: userID, SessionID: sessionID, IsInterested: true}
	return true, nil
}

func (m *mockSessionRepo) Complete(_ context.Context, sessionID, userID uint, durationMinutes int) error {
	session, ok := m.sessions[sessionID]
	if !ok || session.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	session.IsCompleted = true
	session.DurationMinutes = durationMinutes
	return nil
}

func (m *mockSessionRepo) DeleteOwned(_ context.Context, sessionID, userID uint) error {
	session, ok := m.sessions[sessionID]
	if !ok || session.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(m.sessions, sessionID)
	return nil
}

func (m *mockSessionRepo) CountScheduledByUser(_ context.Context, userID uint) (int64, error) {
	var total int64
	for _, s := range m.sessions {
		if s.UserID == userID && !s.IsCompleted {
			total++
		}
	}
	return total, nil
}

func (m *mockSessionRepo) StudyTimeByDay(_ context.Context, userID uint, since time.Time) ([]repository.StudyTimeRow, error) {
	byDay := make(map[string]int)
	for _, s := range m.sessions {
		if s.UserID == userID && s.IsCompleted && !s.Date.Before(since) {
			byDay[s.Date.Format("2006-01-02")] += s.DurationMinutes
		}
	}
	var rows []repository.StudyTimeRow
	for day, minutes := range byDay {
		rows = append(rows, repository.StudyTimeRow{Day: day, TotalMinutes: minutes})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	return rows, nil
}

type mockTaskRepo struct {
	tasks  map[uint]*model.Task
	nextID uint
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[uint]*model.Task), nextID: 1}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.TaskID == 0 {
		task.TaskID = m.nextID
		m.nextID++
	}
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) GetOwned(_ context.Context, taskID, userID uint) (*model.Task, error) {
	if t, ok := m.tasks[taskID]; ok && t.UserID == userID {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) ListByUser(_ context.Context, userID uint) ([]model.Task, error) {
	var result []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TaskID < result[j].TaskID })
	return result, nil
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) DeleteOwned(_ context.Context, taskID, userID uint) error {
	if t, ok := m.tasks[taskID]; ok && t.UserID == userID {
		delete(m.tasks, taskID)
		return nil
	}
	return gorm.ErrRecordNotFound
}

type mockActivityRepo struct {
	activities map[uint]*model.Activity
	nextID     uint
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{activities: make(map[uint]*model.Activity), nextID: 1}
}

func (m *mockActivityRepo) Create(_ context.Context, activity *model.Activity) error {
	if activity.ActivityID == 0 {
		activity.ActivityID = m.nextID
		m.nextID++
	}
	m.activities[activity.ActivityID] = activity
	return nil
}

func (m *mockActivityRepo) ListByUser(_ context.Context, userID uint) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range m.activities {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ActivityID > result[j].ActivityID })
	return result, nil
}

type mockAnnouncementRepo struct {
	announcements map[uint]*model.Announcement
	nextID        uint
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[uint]*model.Announcement), nextID: 1}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, announcement *model.Announcement) error {
	if announcement.AnnouncementID == 0 {
		announcement.AnnouncementID = m.nextID
		m.nextID++
	}
	m.announcements[announcement.AnnouncementID] = announcement
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id uint) (*model.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	result := make([]model.Announcement, 0, len(m.announcements))
	for _, a := range m.announcements {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AnnouncementID > result[j].AnnouncementID })
	return result, nil
}

func (m *mockAnnouncementRepo) Update(_ context.Context, announcement *model.Announcement) error {
	m.announcements[announcement.AnnouncementID] = announcement
	return nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.announcements[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.announcements, id)
	return nil
}

// ── 测试辅助 ──

// newMockRepository 组装全量 mock 仓储
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:         newMockUserRepo(),
		Course:       newMockCourseRepo(),
		StudyGroup:   newMockStudyGroupRepo(),
		Enrollment:   newMockEnrollmentRepo(),
		Membership:   newMockMembershipRepo(),
		Session:      newMockSessionRepo(),
		Task:         newMockTaskRepo(),
		Activity:     newMockActivityRepo(),
		Announcement: newMockAnnouncementRepo(),
	}
}
