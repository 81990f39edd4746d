package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/model"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

func setupTestStudyGroupService() (StudyGroupService, *repository.Repository) {
	repo := newMockRepository()
	return NewStudyGroupService(repo, zap.NewNop()), repo
}

func TestCreateStudyGroup_RequiresCourse(t *testing.T) {
	svc, _ := setupTestStudyGroupService()

	_, err := svc.Create(context.Background(), &dto.CreateStudyGroupRequest{
		GroupName: "算法冲刺组",
		CourseID:  999,
	})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("挂到不存在的课程应得到 ErrCourseNotFound，实际=%v", err)
	}
}

func TestCreateStudyGroup_CarriesCourseName(t *testing.T) {
	svc, repo := setupTestStudyGroupService()
	ctx := context.Background()

	course := &model.Course{CourseName: "数据结构", CourseCode: "CS201"}
	_ = repo.Course.Create(ctx, course)

	result, err := svc.Create(ctx, &dto.CreateStudyGroupRequest{
		GroupName: "链表讨论组",
		CourseID:  course.CourseID,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.CourseName != "数据结构" {
		t.Errorf("期望 CourseName=数据结构，实际=%s", result.CourseName)
	}
}

func TestUpdateStudyGroup_NotFound(t *testing.T) {
	svc, _ := setupTestStudyGroupService()

	name := "新名字"
	_, err := svc.Update(context.Background(), 999, &dto.UpdateStudyGroupRequest{GroupName: &name})
	if !errors.Is(err, ErrStudyGroupNotFound) {
		t.Errorf("期望 ErrStudyGroupNotFound，实际=%v", err)
	}
}

func TestDeleteStudyGroup_NotFound(t *testing.T) {
	svc, _ := setupTestStudyGroupService()

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrStudyGroupNotFound) {
		t.Errorf("期望 ErrStudyGroupNotFound，实际=%v", err)
	}
}
