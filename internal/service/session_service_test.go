package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/model"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

func setupTestSessionService() (SessionService, *repository.Repository) {
	repo := newMockRepository()
	return NewSessionService(repo, zap.NewNop()), repo
}

func createTestSession(repo *repository.Repository, ownerID uint, completed bool) *model.Session {
	session := &model.Session{
		UserID:      ownerID,
		Title:       "算法复习",
		SessionType: model.SessionTypeStudy,
		Date:        time.Now().Add(24 * time.Hour),
		Venue:       "图书馆 3F",
		IsCompleted: completed,
	}
	_ = repo.Session.Create(context.Background(), session)
	return session
}

// ── 创建 / 列表 ──

func TestCreateSession_Success(t *testing.T) {
	svc, _ := setupTestSessionService()

	result, err := svc.Create(context.Background(), 1, &dto.CreateSessionRequest{
		Title:       "期中突击",
		SessionType: model.SessionTypeExam,
		Date:        time.Now().Add(48 * time.Hour),
		Venue:       "教学楼 B201",
	})

	if err != nil {
		t.Fatalf("Create 应成功，但返回错误: %v", err)
	}
	if result.SessionID == 0 {
		t.Error("SessionID 不应为 0")
	}
}

func TestListAll_CarriesInterestFlag(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 1, false)
	createTestSession(repo, 2, false)

	if _, err := svc.ToggleInterest(context.Background(), 1, session.SessionID); err != nil {
		t.Fatalf("ToggleInterest 应成功: %v", err)
	}

	result, err := svc.ListAll(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListAll 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("期望 2 条会话，实际=%d", len(result))
	}

	interested := 0
	for _, r := range result {
		if r.IsInterested {
			interested++
			if r.SessionID != session.SessionID {
				t.Errorf("兴趣标记落在了错误的会话上: session_id=%d", r.SessionID)
			}
		}
	}
	if interested != 1 {
		t.Errorf("期望恰好 1 条带兴趣标记，实际=%d", interested)
	}
}

// ── 兴趣切换 ──

func TestToggleInterest_FirstToggleCreatesTrue(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 2, false)

	result, err := svc.ToggleInterest(context.Background(), 1, session.SessionID)
	if err != nil {
		t.Fatalf("ToggleInterest 应成功: %v", err)
	}
	if !result.IsInterested {
		t.Error("首次切换应得到 is_interested=true")
	}
	if result.Message != "Marked as interested!" {
		t.Errorf("期望 Message=Marked as interested!，实际=%s", result.Message)
	}
}

func TestToggleInterest_SecondToggleFlipsFalse(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 2, false)

	if _, err := svc.ToggleInterest(context.Background(), 1, session.SessionID); err != nil {
		t.Fatalf("首次切换应成功: %v", err)
	}
	result, err := svc.ToggleInterest(context.Background(), 1, session.SessionID)
	if err != nil {
		t.Fatalf("再次切换应成功: %v", err)
	}
	if result.IsInterested {
		t.Error("再次切换应得到 is_interested=false")
	}
	if result.Message != "Interest removed!" {
		t.Errorf("期望 Message=Interest removed!，实际=%s", result.Message)
	}

	// 翻转后不应出现在感兴趣列表中
	interested, err := svc.ListInterested(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListInterested 应成功: %v", err)
	}
	if len(interested) != 0 {
		t.Errorf("翻转为 false 后感兴趣列表应为空，实际=%d 条", len(interested))
	}
}

func TestToggleInterest_RepeatedTogglesKeepSingleMark(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 2, false)

	// 奇数次切换收敛到 true，且始终只有一条标记记录
	for i := 0; i < 3; i++ {
		if _, err := svc.ToggleInterest(context.Background(), 1, session.SessionID); err != nil {
			t.Fatalf("第 %d 次切换应成功: %v", i+1, err)
		}
	}

	sessionRepo := repo.Session.(*mockSessionRepo)
	if len(sessionRepo.marks) != 1 {
		t.Errorf("期望恰好 1 条兴趣标记记录，实际=%d", len(sessionRepo.marks))
	}

	interested, _ := svc.ListInterested(context.Background(), 1)
	if len(interested) != 1 {
		t.Errorf("奇数次切换后感兴趣列表应有 1 条，实际=%d", len(interested))
	}
}

func TestToggleInterest_MissingSession(t *testing.T) {
	svc, _ := setupTestSessionService()

	_, err := svc.ToggleInterest(context.Background(), 1, 999)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("期望 ErrSessionNotFound，实际=%v", err)
	}
}

func TestToggleInterest_CompletedSession(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 2, true)

	_, err := svc.ToggleInterest(context.Background(), 1, session.SessionID)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("已完成会话不可切换兴趣，期望 ErrSessionNotFound，实际=%v", err)
	}
}

// ── 完成 / 删除（归属校验） ──

func TestCompleteSession_Success(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 1, false)

	err := svc.Complete(context.Background(), session.SessionID, 1, &dto.CompleteSessionRequest{Duration: 90})
	if err != nil {
		t.Fatalf("Complete 应成功: %v", err)
	}

	stored, _ := repo.Session.GetByID(context.Background(), session.SessionID)
	if !stored.IsCompleted {
		t.Error("会话应被标记为已完成")
	}
	if stored.DurationMinutes != 90 {
		t.Errorf("期望 DurationMinutes=90，实际=%d", stored.DurationMinutes)
	}
}

func TestCompleteSession_NotOwner(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 1, false)

	err := svc.Complete(context.Background(), session.SessionID, 2, &dto.CompleteSessionRequest{Duration: 90})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("非归属用户完成会话应得到 ErrSessionNotFound，实际=%v", err)
	}
}

func TestDeleteSession_NotOwner(t *testing.T) {
	svc, repo := setupTestSessionService()
	session := createTestSession(repo, 1, false)

	if err := svc.Delete(context.Background(), session.SessionID, 2); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("非归属用户删除会话应得到 ErrSessionNotFound，实际=%v", err)
	}

	// 归属用户可删除
	if err := svc.Delete(context.Background(), session.SessionID, 1); err != nil {
		t.Errorf("归属用户删除应成功，实际=%v", err)
	}
}
