package repository

import (
	"context"

	"gorm.io/gorm"

	"purple-day/backend/internal/model"
)

// UserRepository 通知收件人数据访问接口
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	// ListEmails 返回全部收件人邮箱
	ListEmails(ctx context.Context) ([]string, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实现
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Order("email ASC").
		Pluck("email", &emails).Error
	return emails, err
}
