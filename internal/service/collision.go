package service

import (
	"time"

	"purple-day/backend/internal/model"
)

// ── 假期冲突检测 ──

// Stage 表示一个 Purple Day 当前命中的通知阶段
type Stage int

const (
	StageNone           Stage = iota
	StageAdvanceWarning       // 提前一周预警
	StageEveReminder          // 前一日提醒
	StageCancelNow            // 当日自动取消
)

// String 实现 fmt.Stringer
func (s Stage) String() string {
	switch s {
	case StageAdvanceWarning:
		return "advance_warning"
	case StageEveReminder:
		return "eve_reminder"
	case StageCancelNow:
		return "cancel_now"
	default:
		return "none"
	}
}

// StagedDay 冲突检测结果：某个排期与其命中的阶段
type StagedDay struct {
	Day   model.PurpleDay
	Stage Stage
}

// DetectCollisions 将未取消的排期逐个对照假期集合，归类到通知阶段
//
// 每个排期每次调用至多命中一个阶段。三个阶段按日期偏移互斥
// （+7 天 / +1 天 / 当天），但排期周期极短时当天与 +7 天可能指向
// 同一排期，此时当日取消优先，故按 CancelNow → EveReminder →
// AdvanceWarning 的顺序判定。
func DetectCollisions(days []model.PurpleDay, holidaySet map[string]struct{}, today time.Time) []StagedDay {
	today = DateOnly(today)
	tomorrow := today.AddDate(0, 0, 1)
	inSevenDays := today.AddDate(0, 0, 7)

	var staged []StagedDay
	for _, day := range days {
		if day.Status == model.StatusCanceled {
			continue
		}

		current := DateOnly(day.CurrentDate)
		if _, isHoliday := holidaySet[dateKey(current)]; !isHoliday {
			continue
		}

		notifiedToday := day.LastNotifiedOn != nil && sameDate(*day.LastNotifiedOn, today)

		var stage Stage
		switch {
		case current.Equal(today) && day.Status == model.StatusConfirmed:
			stage = StageCancelNow
		case current.Equal(tomorrow) && day.Status == model.StatusConfirmed && !notifiedToday:
			stage = StageEveReminder
		case current.Equal(inSevenDays) && !notifiedToday:
			stage = StageAdvanceWarning
		default:
			continue
		}

		staged = append(staged, StagedDay{Day: day, Stage: stage})
	}
	return staged
}

// MissedChanges 返回改期后仍落在假期上、需强制取消的排期
//
// 与阶段检测分开扫描：手动改期到假期的排期状态为 Changed，
// 不会命中 CancelNow（其要求 Confirmed），由本扫描兜底取消。
func MissedChanges(days []model.PurpleDay, holidaySet map[string]struct{}, today time.Time) []model.PurpleDay {
	today = DateOnly(today)

	var missed []model.PurpleDay
	for _, day := range days {
		if day.Status == model.StatusCanceled {
			continue
		}
		current := DateOnly(day.CurrentDate)
		if !current.Equal(today) {
			continue
		}
		if _, isHoliday := holidaySet[dateKey(current)]; isHoliday {
			missed = append(missed, day)
		}
	}
	return missed
}
