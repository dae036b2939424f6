package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"purple-day/backend/config"
	"purple-day/backend/internal/api/handler"
	"purple-day/backend/internal/api/middleware"
	"purple-day/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Purple Day 模块
		purpleDays := v1.Group("/purple-days")
		{
			purpleDays.GET("", h.PurpleDay.List)
			purpleDays.POST("/generate", middleware.RateLimit(rdb, 10, time.Minute), h.PurpleDay.Generate)
			purpleDays.PUT("/:id/reschedule", h.PurpleDay.Reschedule)
		}

		// 假期模块
		holidays := v1.Group("/holidays")
		{
			holidays.GET("", h.Holiday.List)
			holidays.POST("/sync", middleware.RateLimit(rdb, 10, time.Minute), h.Holiday.Sync)
		}

		// 巡检模块（手动触发入口）
		v1.POST("/sweep/run", middleware.RateLimit(rdb, 5, time.Minute), h.Sweep.Run)

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/schedule", h.Export.ExportSchedule)
			export.GET("/calendar.ics", h.Export.ExportCalendar)
		}
	}

	return r
}
