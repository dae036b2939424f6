package service

import (
	"fmt"
	"strings"

	"purple-day/backend/internal/model"
)

// ── 通知文案 ──

// Mailer 邮件发送接口（由 pkg/mailer 实现，测试中用内存假件替换）
type Mailer interface {
	Send(subject, body string, recipients []string) error
}

// adjustmentOptions 按工作日给出改期建议
// 周一只能后移到周二，周五只能前移到周四，其余双向均可
func adjustmentOptions(weekday int) []string {
	switch weekday {
	case 0:
		return []string{"改到周二"}
	case 4:
		return []string{"改到周四"}
	default:
		return []string{"改到前一个工作日", "改到后一个工作日"}
	}
}

// buildNotice 按阶段生成邮件主题与正文
func buildNotice(stage Stage, day model.PurpleDay) (subject, body string) {
	date := DateOnly(day.CurrentDate).Format(dateLayout)

	switch stage {
	case StageAdvanceWarning:
		var options strings.Builder
		for _, opt := range adjustmentOptions(day.Weekday) {
			options.WriteString("- " + opt + "\n")
		}
		subject = fmt.Sprintf("【提醒】Purple Day %s 与公共假期重合", date)
		body = fmt.Sprintf(`您好：

原定于 %s 的 Purple Day 与公共假期重合。

建议尽快改期，可选方案：
%s
若在前一日仍未改期，该 Purple Day 将被自动取消。

Purple Day 系统`, date, options.String())

	case StageEveReminder:
		subject = fmt.Sprintf("【再次提醒】Purple Day %s 仍未改期", date)
		body = fmt.Sprintf(`您好：

%s 的 Purple Day 落在公共假期且尚未改期。

请注意：今日内未改期，明天将被自动取消。

Purple Day 系统`, date)

	case StageCancelNow:
		subject = fmt.Sprintf("【已取消】Purple Day %s 已自动取消", date)
		body = fmt.Sprintf(`您好：

%s 的 Purple Day 与公共假期重合且未改期，已被自动取消。

Purple Day 系统`, date)
	}

	return subject, body
}
