package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/iamaayush710/Study-Buds/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 任务清单导出为 Excel (.xlsx)，日程导出为 iCalendar (.ics)
//   - 均以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 只导出当前用户自己的数据
type ExportService interface {
	// ExportTasks 导出当前用户的任务清单为 Excel
	ExportTasks(ctx context.Context, userID uint) (*bytes.Buffer, string, error)
	// ExportCalendar 导出当前用户的会话日程为 iCalendar
	ExportCalendar(ctx context.Context, userID uint) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportTasks ──────────────────────

func (s *exportService) ExportTasks(ctx context.Context, userID uint) (*bytes.Buffer, string, error) {
	tasks, err := s.repo.Task.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询任务失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Tasks"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽与表头
	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "B", 48)
	f.SetColWidth(sheetName, "C", "E", 16)
	f.SetColWidth(sheetName, "F", "F", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Title", "Description", "Due Date", "Subject", "Priority", "Completed"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s1", col)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 数据行
	for i := range tasks {
		t := &tasks[i]
		row := i + 2

		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		completed := "No"
		if t.IsCompleted {
			completed = "Yes"
		}

		values := []interface{}{t.Title, t.Description, due, t.Subject, t.Priority, completed}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("tasks_%d.xlsx", userID)
	return buf, filename, nil
}

// ────────────────────── ExportCalendar ──────────────────────

// 未完成会话默认占用时长（分钟），仅用于日历事件结束时间
const defaultEventMinutes = 60

func (s *exportService) ExportCalendar(ctx context.Context, userID uint) (*bytes.Buffer, string, error) {
	rows, err := s.repo.Session.ListAllWithInterest(ctx, userID)
	if err != nil {
		s.logger.Error("查询会话失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Study-Buds//Session Calendar//EN")

	now := time.Now()
	for i := range rows {
		sess := &rows[i]
		// 只导出自己的或标记了兴趣的会话
		if sess.UserID != userID && !sess.IsInterested {
			continue
		}

		minutes := sess.DurationMinutes
		if minutes <= 0 {
			minutes = defaultEventMinutes
		}

		event := cal.AddEvent(fmt.Sprintf("session-%d@study-buds", sess.SessionID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(sess.Date)
		event.SetEndAt(sess.Date.Add(time.Duration(minutes) * time.Minute))
		event.SetSummary(fmt.Sprintf("[%s] %s", sess.SessionType, sess.Title))
		event.SetLocation(sess.Venue)
		if sess.Description != "" {
			event.SetDescription(sess.Description)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("sessions_%d.ics", userID)
	return buf, filename, nil
}
