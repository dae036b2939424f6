package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"purple-day/backend/config"
)

// Mailer SMTP 邮件发送器
// 对巡检流程而言发送是尽力而为的：失败由调用方记录日志并在下次巡检重试
type Mailer struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

// New 创建 Mailer 实例
func New(cfg *config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Send 向收件人列表发送一封纯文本邮件
// 配置的 Cc 列表附加为抄送；未配置 SMTP 主机时返回错误
func (m *Mailer) Send(subject, body string, recipients []string) error {
	if m.cfg.SMTPHost == "" {
		return fmt.Errorf("未配置 SMTP 主机，无法发送邮件")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("收件人列表为空")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipients...)
	if len(m.cfg.Cc) > 0 {
		msg.SetHeader("Cc", m.cfg.Cc...)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	m.logger.Debug("邮件已发送",
		zap.String("subject", subject),
		zap.Int("recipients", len(recipients)),
	)
	return nil
}
