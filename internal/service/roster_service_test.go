package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

func setupTestRosterService() (RosterService, *repository.Repository) {
	repo := newMockRepository()
	return NewRosterService(repo, zap.NewNop()), repo
}

func TestEnroll_DuplicateRejected(t *testing.T) {
	svc, _ := setupTestRosterService()
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, &dto.EnrollRequest{UserID: 1, CourseID: 10}); err != nil {
		t.Fatalf("首次选课应成功: %v", err)
	}
	_, err := svc.Enroll(ctx, &dto.EnrollRequest{UserID: 1, CourseID: 10})
	if !errors.Is(err, ErrAlreadyEnrolled) {
		t.Errorf("重复选课应得到 ErrAlreadyEnrolled，实际=%v", err)
	}
}

func TestUnenroll_MissingRecord(t *testing.T) {
	svc, _ := setupTestRosterService()

	err := svc.Unenroll(context.Background(), 1, 10)
	if !errors.Is(err, ErrEnrollmentNotFound) {
		t.Errorf("期望 ErrEnrollmentNotFound，实际=%v", err)
	}
}

func TestJoinGroup_DuplicateRejected(t *testing.T) {
	svc, _ := setupTestRosterService()
	ctx := context.Background()

	if _, err := svc.JoinGroup(ctx, &dto.JoinGroupRequest{StudyGroupID: 5, UserID: 1}); err != nil {
		t.Fatalf("首次加入应成功: %v", err)
	}
	_, err := svc.JoinGroup(ctx, &dto.JoinGroupRequest{StudyGroupID: 5, UserID: 1})
	if !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("重复加入应得到 ErrAlreadyMember，实际=%v", err)
	}
}

func TestLeaveGroup_RoundTrip(t *testing.T) {
	svc, _ := setupTestRosterService()
	ctx := context.Background()

	if _, err := svc.JoinGroup(ctx, &dto.JoinGroupRequest{StudyGroupID: 5, UserID: 1}); err != nil {
		t.Fatalf("加入应成功: %v", err)
	}
	if err := svc.LeaveGroup(ctx, 5, 1); err != nil {
		t.Fatalf("退出应成功: %v", err)
	}

	members, _ := svc.ListGroupMembers(ctx, 5)
	if len(members) != 0 {
		t.Errorf("退出后成员列表应为空，实际=%d 条", len(members))
	}

	if err := svc.LeaveGroup(ctx, 5, 1); !errors.Is(err, ErrMembershipNotFound) {
		t.Errorf("再次退出应得到 ErrMembershipNotFound，实际=%v", err)
	}
}
