package dto

// ── 假期模块 DTO ──

// HolidayResponse 公共假期信息响应
type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// SyncHolidaysResponse 假期同步结果
type SyncHolidaysResponse struct {
	Year     int    `json:"year"`
	Region   string `json:"region"`
	Imported int    `json:"imported"`
}
