package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

func setupTestUserService() (UserService, *repository.Repository) {
	repo := newMockRepository()
	return NewUserService(repo, zap.NewNop()), repo
}

func TestGetProfile_Success(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "alice@test.com", "password123")

	result, err := svc.GetProfile(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("GetProfile 应成功: %v", err)
	}
	if result.Email != "alice@test.com" {
		t.Errorf("期望 Email=alice@test.com，实际=%s", result.Email)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.GetProfile(context.Background(), 999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际=%v", err)
	}
}

func TestUpdateUser_SelfOnly(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "alice@test.com", "password123")

	name := "入侵者"
	_, err := svc.Update(context.Background(), user.UserID, user.UserID+1, &dto.UpdateUserRequest{Name: &name})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("更新他人资料应得到 ErrForbidden，实际=%v", err)
	}
}

func TestUpdateUser_PartialUpdate(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "alice@test.com", "password123")

	picture := "avatar-07.png"
	result, err := svc.Update(context.Background(), user.UserID, user.UserID, &dto.UpdateUserRequest{
		ProfilePicture: &picture,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.ProfilePicture != "avatar-07.png" {
		t.Errorf("期望 ProfilePicture=avatar-07.png，实际=%s", result.ProfilePicture)
	}
	if result.Email != "alice@test.com" {
		t.Errorf("缺省字段 Email 应保持原值，实际=%s", result.Email)
	}
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "alice@test.com", "password123")
	createTestUser(repo, "bob@test.com", "password123")

	email := "bob@test.com"
	_, err := svc.Update(context.Background(), user.UserID, user.UserID, &dto.UpdateUserRequest{Email: &email})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("换绑到已占用邮箱应得到 ErrEmailTaken，实际=%v", err)
	}
}

func TestDeleteUser_SelfOnly(t *testing.T) {
	svc, repo := setupTestUserService()
	user := createTestUser(repo, "alice@test.com", "password123")

	if err := svc.Delete(context.Background(), user.UserID, user.UserID+1); !errors.Is(err, ErrForbidden) {
		t.Errorf("注销他人账户应得到 ErrForbidden，实际=%v", err)
	}

	if err := svc.Delete(context.Background(), user.UserID, user.UserID); err != nil {
		t.Errorf("注销本人账户应成功，实际=%v", err)
	}
	if _, err := svc.GetProfile(context.Background(), user.UserID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("注销后查询应得到 ErrUserNotFound，实际=%v", err)
	}
}
