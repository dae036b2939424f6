package handler

import (
	"github.com/gin-gonic/gin"

	"purple-day/backend/internal/service"
	"purple-day/backend/pkg/response"
)

// SweepHandler 巡检模块 HTTP 处理器
//
// 巡检由 cron 定时触发，此处提供手动触发入口便于运维和联调
type SweepHandler struct {
	sweepSvc service.SweepService
}

// NewSweepHandler 创建 SweepHandler
func NewSweepHandler(sweepSvc service.SweepService) *SweepHandler {
	return &SweepHandler{sweepSvc: sweepSvc}
}

// Run 手动触发一次每日巡检
// POST /api/v1/sweep/run
func (h *SweepHandler) Run(c *gin.Context) {
	result, err := h.sweepSvc.RunDailySweep(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
