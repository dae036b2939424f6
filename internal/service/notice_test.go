package service

import (
	"strings"
	"testing"
	"time"

	"purple-day/backend/internal/model"
)

func TestAdjustmentOptions(t *testing.T) {
	cases := []struct {
		weekday int
		want    []string
	}{
		{0, []string{"改到周二"}},                       // 周一只能后移
		{4, []string{"改到周四"}},                       // 周五只能前移
		{2, []string{"改到前一个工作日", "改到后一个工作日"}}, // 周三双向
	}

	for _, tc := range cases {
		got := adjustmentOptions(tc.weekday)
		if len(got) != len(tc.want) {
			t.Errorf("工作日 %d 的建议数量 = %d, 期望 %d", tc.weekday, len(got), len(tc.want))
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("工作日 %d 的建议[%d] = %s, 期望 %s", tc.weekday, i, got[i], tc.want[i])
			}
		}
	}
}

func TestBuildNotice_Stages(t *testing.T) {
	day := model.PurpleDay{
		CurrentDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Weekday:     2,
	}

	cases := []struct {
		stage       Stage
		wantSubject string
	}{
		{StageAdvanceWarning, "【提醒】"},
		{StageEveReminder, "【再次提醒】"},
		{StageCancelNow, "【已取消】"},
	}

	for _, tc := range cases {
		subject, body := buildNotice(tc.stage, day)
		if !strings.Contains(subject, tc.wantSubject) {
			t.Errorf("%v 主题 = %s, 期望包含 %s", tc.stage, subject, tc.wantSubject)
		}
		if !strings.Contains(subject, "2025-09-10") {
			t.Errorf("%v 主题应包含日期, 实际 %s", tc.stage, subject)
		}
		if body == "" {
			t.Errorf("%v 正文为空", tc.stage)
		}
	}
}

func TestBuildNotice_WarningIncludesOptions(t *testing.T) {
	day := model.PurpleDay{
		CurrentDate: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
		Weekday:     0, // 周一
	}

	_, body := buildNotice(StageAdvanceWarning, day)
	if !strings.Contains(body, "改到周二") {
		t.Error("周一排期的预警正文应包含后移建议")
	}
	if !strings.Contains(body, "自动取消") {
		t.Error("预警正文应说明未改期的后果")
	}
}
