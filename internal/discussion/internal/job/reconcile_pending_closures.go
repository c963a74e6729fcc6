package job

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/labelhub/labelhub/internal/discussion/internal/service"
)

var _ ecron.NamedJob = (*ReconcilePendingClosuresJob)(nil)

// ReconcilePendingClosuresJob 把存储故障期间挂起的关闭请求补偿掉
type ReconcilePendingClosuresJob struct {
	svc    service.Service
	logger *elog.Component
}

func NewReconcilePendingClosuresJob(svc service.Service) *ReconcilePendingClosuresJob {
	return &ReconcilePendingClosuresJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *ReconcilePendingClosuresJob) Name() string {
	return "ReconcilePendingClosuresJob"
}

func (j *ReconcilePendingClosuresJob) Run(ctx context.Context) error {
	closed, err := j.svc.ReconcilePendingClosures(ctx)
	if err != nil {
		return err
	}
	if closed > 0 {
		j.logger.Info("补偿关闭讨论", elog.Any("closed", closed))
	}
	return nil
}
