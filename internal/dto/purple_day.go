package dto

// ── Purple Day 模块 DTO ──

// GeneratePurpleDaysRequest 批量生成排期请求
// StartDate 为空时从当天开始；Weeks 为空时取配置默认值
type GeneratePurpleDaysRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	Weeks     int    `json:"weeks"`
}

// ReschedulePurpleDayRequest 手动改期请求
type ReschedulePurpleDayRequest struct {
	NewDate string `json:"new_date" binding:"required"` // YYYY-MM-DD
}

// PurpleDayResponse Purple Day 信息响应
type PurpleDayResponse struct {
	ID             string `json:"id"`
	OriginalDate   string `json:"original_date"`
	CurrentDate    string `json:"current_date"`
	Weekday        int    `json:"weekday"` // 0=周一 … 6=周日
	Status         string `json:"status"`
	LastNotifiedOn string `json:"last_notified_on,omitempty"`
}

// GeneratePurpleDaysResponse 批量生成结果
type GeneratePurpleDaysResponse struct {
	Generated int                 `json:"generated"`
	Days      []PurpleDayResponse `json:"days"`
}
