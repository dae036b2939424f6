package model

// User 通知收件人（注册用户）— 对应 users
// 本系统无认证体系，用户仅作为邮件通知的收件人登记
type User struct {
	UserID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name   string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email  string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
