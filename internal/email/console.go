package email

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

// ConsoleService 开发环境用，邮件直接打进日志
type ConsoleService struct {
	logger *elog.Component
}

func NewConsoleService() *ConsoleService {
	return &ConsoleService{
		logger: elog.DefaultLogger,
	}
}

func (s *ConsoleService) SendMail(ctx context.Context, mail Mail) error {
	s.logger.Info("发送邮件:",
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject),
		elog.String("body", string(mail.Body)))
	return nil
}
