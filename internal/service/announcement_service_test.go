package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
)

func setupTestAnnouncementService() AnnouncementService {
	return NewAnnouncementService(newMockRepository(), zap.NewNop())
}

func TestAnnouncement_CRUDRoundTrip(t *testing.T) {
	svc := setupTestAnnouncementService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateAnnouncementRequest{
		Title:   "期末机房开放时间调整",
		Content: "自下周起机房开放至 23:00。",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	content := "自下周起机房开放至 24:00。"
	updated, err := svc.Update(ctx, created.AnnouncementID, &dto.UpdateAnnouncementRequest{Content: &content})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Title != "期末机房开放时间调整" {
		t.Errorf("缺省字段 Title 应保持原值，实际=%s", updated.Title)
	}
	if updated.Content != content {
		t.Errorf("Content 未更新，实际=%s", updated.Content)
	}

	if err := svc.Delete(ctx, created.AnnouncementID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	list, _ := svc.List(ctx)
	if len(list) != 0 {
		t.Errorf("删除后列表应为空，实际=%d 条", len(list))
	}
}

func TestAnnouncement_UpdateMissing(t *testing.T) {
	svc := setupTestAnnouncementService()

	title := "不存在"
	_, err := svc.Update(context.Background(), 999, &dto.UpdateAnnouncementRequest{Title: &title})
	if !errors.Is(err, ErrAnnouncementNotFound) {
		t.Errorf("期望 ErrAnnouncementNotFound，实际=%v", err)
	}
}
