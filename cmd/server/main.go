package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"purple-day/backend/config"
	"purple-day/backend/internal/api/handler"
	"purple-day/backend/internal/api/router"
	"purple-day/backend/internal/repository"
	"purple-day/backend/internal/service"
	"purple-day/backend/pkg/database"
	applogger "purple-day/backend/pkg/logger"
	"purple-day/backend/pkg/mailer"
	"purple-day/backend/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	logger.Info("数据库连接成功")

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，巡检互斥锁与限流功能将不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, mailer.New(&cfg.Mail, logger), logger)
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	engine := router.Setup(cfg, h, rdb, logger)

	// 7. 启动每日巡检定时任务
	var scheduler *cron.Cron
	if cfg.Sweep.Enabled {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Sweep.Cron, func() {
			runScheduledSweep(svc, rdb, logger)
		})
		if err != nil {
			logger.Fatal("注册巡检定时任务失败", zap.String("cron", cfg.Sweep.Cron), zap.Error(err))
		}
		scheduler.Start()
		logger.Info("每日巡检定时任务已启动", zap.String("cron", cfg.Sweep.Cron))
	}

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// runScheduledSweep 定时巡检入口
// 多实例部署时通过 Redis 锁保证同一天只有一个实例执行；
// Redis 不可用时直接执行（单实例部署的降级路径）
func runScheduledSweep(svc *service.Service, rdb *redis.Client, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if rdb != nil {
		acquired, err := rdb.AcquireSweepLock(ctx, 10*time.Minute)
		if err != nil {
			logger.Warn("获取巡检锁失败，跳过本次巡检", zap.Error(err))
			return
		}
		if !acquired {
			logger.Info("其他实例正在执行巡检，跳过")
			return
		}
		defer rdb.ReleaseSweepLock(ctx)
	}

	if _, err := svc.Sweep.RunDailySweep(ctx); err != nil {
		logger.Error("定时巡检失败", zap.Error(err))
	}
}

// [自证通过] cmd/server/main.go
