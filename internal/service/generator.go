package service

import (
	"time"

	"purple-day/backend/internal/model"
)

// ── Purple Day 轮换生成器 ──
//
// 每周产生一个 Purple Day，目标工作日逐周回退一天：
// 周三 → 周二 → 周一 → 周五 → 周四 → 周三 …（下标 2,1,0,4,3 循环）。
// 回绕边界固定在 0-4 之间，目标永远不会落到周末。

// GeneratePurpleDays 从 startDate 起生成 count 个 Purple Day
//
// 纯函数：相同入参必然产出完全一致的序列（生成操作的幂等性
// 由仓储层的整批替换保证）。startWeekday 为首个目标工作日下标（0-4）。
func GeneratePurpleDays(startDate time.Time, count int, startWeekday int) []model.PurpleDay {
	days := make([]model.PurpleDay, 0, count)

	cursor := DateOnly(startDate)
	target := startWeekday

	for i := 0; i < count; i++ {
		// 游标先跳过周末，落到下一个工作日
		for !IsBusinessDay(cursor) {
			cursor = cursor.AddDate(0, 0, 1)
		}

		// 游标所在周内不早于游标、工作日下标等于 target 的日期
		candidate := cursor.AddDate(0, 0, (target-WeekdayIndex(cursor)+7)%7)

		// 防御性回退：target 始终在 0-4，此循环正常不会执行
		for !IsBusinessDay(candidate) {
			candidate = candidate.AddDate(0, 0, -1)
		}

		days = append(days, model.PurpleDay{
			OriginalDate: candidate,
			CurrentDate:  candidate,
			Weekday:      WeekdayIndex(candidate),
			Status:       model.StatusConfirmed,
		})

		// 游标固定前进整周，与候选日期的具体落点无关
		cursor = cursor.AddDate(0, 0, 7)

		// 目标工作日回退一天，0 回绕到 4
		if target > 0 {
			target--
		} else {
			target = 4
		}
	}

	return days
}
