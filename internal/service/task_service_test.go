package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/dto"
	"github.com/iamaayush710/Study-Buds/internal/repository"
)

func setupTestTaskService() (TaskService, *repository.Repository) {
	repo := newMockRepository()
	return NewTaskService(repo, zap.NewNop()), repo
}

func TestCreateTask_Success(t *testing.T) {
	svc, _ := setupTestTaskService()

	result, err := svc.Create(context.Background(), 1, &dto.CreateTaskRequest{
		Title:    "完成实验报告",
		Subject:  "操作系统",
		Priority: "high",
	})

	if err != nil {
		t.Fatalf("Create 应成功，但返回错误: %v", err)
	}
	if result.TaskID == 0 {
		t.Error("TaskID 不应为 0")
	}
	if result.IsCompleted {
		t.Error("新任务不应默认已完成")
	}
}

func TestUpdateTask_PartialUpdatePreservesFields(t *testing.T) {
	svc, _ := setupTestTaskService()

	created, err := svc.Create(context.Background(), 1, &dto.CreateTaskRequest{
		Title:    "完成实验报告",
		Subject:  "操作系统",
		Priority: "high",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	done := true
	result, err := svc.Update(context.Background(), created.TaskID, 1, &dto.UpdateTaskRequest{
		IsCompleted: &done,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	if !result.IsCompleted {
		t.Error("IsCompleted 应更新为 true")
	}
	if result.Title != "完成实验报告" {
		t.Errorf("缺省字段 Title 应保持原值，实际=%s", result.Title)
	}
	if result.Priority != "high" {
		t.Errorf("缺省字段 Priority 应保持原值，实际=%s", result.Priority)
	}
}

func TestUpdateTask_NotOwner(t *testing.T) {
	svc, _ := setupTestTaskService()

	created, _ := svc.Create(context.Background(), 1, &dto.CreateTaskRequest{Title: "别人的任务"})

	title := "篡改"
	_, err := svc.Update(context.Background(), created.TaskID, 2, &dto.UpdateTaskRequest{Title: &title})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("非归属用户更新任务应得到 ErrTaskNotFound，实际=%v", err)
	}
}

func TestDeleteTask_OwnerScoping(t *testing.T) {
	svc, _ := setupTestTaskService()

	created, _ := svc.Create(context.Background(), 1, &dto.CreateTaskRequest{Title: "待删除"})

	if err := svc.Delete(context.Background(), created.TaskID, 2); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("非归属用户删除任务应得到 ErrTaskNotFound，实际=%v", err)
	}
	if err := svc.Delete(context.Background(), created.TaskID, 1); err != nil {
		t.Errorf("归属用户删除应成功，实际=%v", err)
	}

	tasks, _ := svc.List(context.Background(), 1)
	if len(tasks) != 0 {
		t.Errorf("删除后任务列表应为空，实际=%d 条", len(tasks))
	}
}

func TestListTasks_OnlyOwn(t *testing.T) {
	svc, _ := setupTestTaskService()

	_, _ = svc.Create(context.Background(), 1, &dto.CreateTaskRequest{Title: "我的任务"})
	_, _ = svc.Create(context.Background(), 2, &dto.CreateTaskRequest{Title: "别人的任务"})

	tasks, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("期望 1 条任务，实际=%d", len(tasks))
	}
	if tasks[0].Title != "我的任务" {
		t.Errorf("期望 Title=我的任务，实际=%s", tasks[0].Title)
	}
}
