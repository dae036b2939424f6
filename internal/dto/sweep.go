package dto

// ── 巡检模块 DTO ──

// SweepResultResponse 一次每日巡检的汇总结果
type SweepResultResponse struct {
	Date          string   `json:"date"`
	Warned        int      `json:"warned"`         // 提前一周预警
	Reminded      int      `json:"reminded"`       // 前一日提醒
	Canceled      int      `json:"canceled"`       // 当日自动取消
	ForceCanceled int      `json:"force_canceled"` // 改期后仍落在假期被强制取消
	Errors        []string `json:"errors,omitempty"`
}
