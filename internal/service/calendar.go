package service

import "time"

// ── 日历工具 ──
//
// 全系统只处理单一本地日历日期：所有日期统一归一化为 UTC 零点，
// 工作日下标约定为 0=周一 … 6=周日（与数据库 weekday 列一致）。

const dateLayout = "2006-01-02"

// DateOnly 将时间截断为当日零点（UTC）
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekdayIndex 返回 0=周一 … 6=周日 的工作日下标
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsBusinessDay 是否为工作日（周一至周五）
func IsBusinessDay(t time.Time) bool {
	return WeekdayIndex(t) < 5
}

// dateKey 生成假期集合的查找键
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// sameDate 两个时间是否为同一日历日期
func sameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
