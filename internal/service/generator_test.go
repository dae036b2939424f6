package service

import (
	"testing"
	"time"

	"purple-day/backend/internal/model"
)

// 2025-09-01 是周一
var genStart = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func TestGeneratePurpleDays_RotationCycle(t *testing.T) {
	// 从周三（下标2）起步，目标逐周回退：2,1,0,4,3 然后回到 2
	days := GeneratePurpleDays(genStart, 6, 2)

	wantWeekdays := []int{2, 1, 0, 4, 3, 2}
	if len(days) != 6 {
		t.Fatalf("生成数量 = %d, 期望 6", len(days))
	}
	for i, d := range days {
		if d.Weekday != wantWeekdays[i] {
			t.Errorf("第 %d 个排期工作日 = %d, 期望 %d", i, d.Weekday, wantWeekdays[i])
		}
	}
}

func TestGeneratePurpleDays_ConcreteDates(t *testing.T) {
	// 周一起步、周三为首个目标：第一周落在 09-03（周三），
	// 第二周目标周二落在 09-09，第三周目标周一落在 09-15
	days := GeneratePurpleDays(genStart, 3, 2)

	wantDates := []string{"2025-09-03", "2025-09-09", "2025-09-15"}
	for i, d := range days {
		got := d.OriginalDate.Format(dateLayout)
		if got != wantDates[i] {
			t.Errorf("第 %d 个排期日期 = %s, 期望 %s", i, got, wantDates[i])
		}
	}
}

func TestGeneratePurpleDays_NeverOnWeekend(t *testing.T) {
	// 各种起始日和起始工作日组合下，排期永远不落在周末
	for offset := 0; offset < 14; offset++ {
		for startWeekday := 0; startWeekday <= 4; startWeekday++ {
			days := GeneratePurpleDays(genStart.AddDate(0, 0, offset), 12, startWeekday)
			for _, d := range days {
				if !IsBusinessDay(d.OriginalDate) {
					t.Fatalf("排期 %s 落在周末（起始偏移 %d, 起始工作日 %d）",
						d.OriginalDate.Format(dateLayout), offset, startWeekday)
				}
			}
		}
	}
}

func TestGeneratePurpleDays_Deterministic(t *testing.T) {
	first := GeneratePurpleDays(genStart, 10, 2)
	second := GeneratePurpleDays(genStart, 10, 2)

	for i := range first {
		if !first[i].OriginalDate.Equal(second[i].OriginalDate) {
			t.Fatalf("相同入参产出不一致: %v != %v", first[i].OriginalDate, second[i].OriginalDate)
		}
	}
}

func TestGeneratePurpleDays_WeekendStart(t *testing.T) {
	// 周六起步：游标先跳到周一，首个排期仍在第一个完整工作周内
	saturday := time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC)
	days := GeneratePurpleDays(saturday, 1, 2)

	if len(days) != 1 {
		t.Fatalf("生成数量 = %d, 期望 1", len(days))
	}
	want := "2025-09-10" // 下周三
	if got := days[0].OriginalDate.Format(dateLayout); got != want {
		t.Errorf("首个排期 = %s, 期望 %s", got, want)
	}
}

func TestGeneratePurpleDays_InitialState(t *testing.T) {
	days := GeneratePurpleDays(genStart, 3, 2)

	for _, d := range days {
		if d.Status != model.StatusConfirmed {
			t.Errorf("新排期状态 = %s, 期望 %s", d.Status, model.StatusConfirmed)
		}
		if !d.CurrentDate.Equal(d.OriginalDate) {
			t.Errorf("新排期当前日期应等于原定日期")
		}
		if d.LastNotifiedOn != nil {
			t.Errorf("新排期不应有通知记录")
		}
	}
}
