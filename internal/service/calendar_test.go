package service

import (
	"testing"
	"time"
)

func TestWeekdayIndex(t *testing.T) {
	// 2025-09-01 是周一
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		offset int
		want   int
	}{
		{0, 0}, // 周一
		{1, 1}, // 周二
		{4, 4}, // 周五
		{5, 5}, // 周六
		{6, 6}, // 周日
	}
	for _, tc := range cases {
		got := WeekdayIndex(monday.AddDate(0, 0, tc.offset))
		if got != tc.want {
			t.Errorf("偏移 %d 天的工作日下标 = %d, 期望 %d", tc.offset, got, tc.want)
		}
	}
}

func TestIsBusinessDay(t *testing.T) {
	// 2025-09-05 周五 / 09-06 周六 / 09-07 周日 / 09-08 周一
	friday := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)

	if !IsBusinessDay(friday) {
		t.Error("周五应为工作日")
	}
	if IsBusinessDay(friday.AddDate(0, 0, 1)) {
		t.Error("周六不应为工作日")
	}
	if IsBusinessDay(friday.AddDate(0, 0, 2)) {
		t.Error("周日不应为工作日")
	}
	if !IsBusinessDay(friday.AddDate(0, 0, 3)) {
		t.Error("周一应为工作日")
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	withTime := time.Date(2025, 9, 1, 23, 59, 59, 0, loc)

	got := DateOnly(withTime)
	want := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, 期望 %v", got, want)
	}
}
