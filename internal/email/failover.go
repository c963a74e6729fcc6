package email

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gotomicro/ego/core/elog"
)

var ErrAllChannelsFailed = errors.New("所有邮件渠道都发送失败")

// FailoverService 一个渠道挂了就换下一个，从上次成功的渠道继续
type FailoverService struct {
	services []Service
	idx      uint64
	logger   *elog.Component
}

func NewFailoverService(services ...Service) *FailoverService {
	return &FailoverService{
		services: services,
		logger:   elog.DefaultLogger,
	}
}

func (s *FailoverService) SendMail(ctx context.Context, mail Mail) error {
	start := atomic.LoadUint64(&s.idx)
	n := uint64(len(s.services))
	for i := uint64(0); i < n; i++ {
		cur := (start + i) % n
		err := s.services[cur].SendMail(ctx, mail)
		if err == nil {
			atomic.StoreUint64(&s.idx, cur)
			return nil
		}
		s.logger.Warn("邮件渠道发送失败，切换下一个",
			elog.Any("channel", cur), elog.FieldErr(err))
	}
	return ErrAllChannelsFailed
}
