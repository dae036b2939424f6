package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"purple-day/backend/config"
)

// Client Redis 客户端封装
// 当前用于每日巡检互斥锁与接口速率限制；后续可扩展缓存等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 巡检互斥锁 ──

const sweepLockKey = "purple_day:sweep:lock"

// AcquireSweepLock 获取每日巡检互斥锁（SETNX）
// 防止 cron 触发与手动触发的巡检并发执行；返回 false 表示已有巡检在运行
func (c *Client) AcquireSweepLock(ctx context.Context, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, sweepLockKey, "1", ttl).Result()
}

// ReleaseSweepLock 释放巡检互斥锁
func (c *Client) ReleaseSweepLock(ctx context.Context) error {
	return c.rdb.Del(ctx, sweepLockKey).Err()
}

// ── 速率限制 ──

// CheckRateLimit 固定窗口计数速率限制
// 返回 true 表示放行；窗口内首个请求设置过期时间
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
