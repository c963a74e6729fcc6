package discussion

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/discussion/internal/domain"
	"github.com/labelhub/labelhub/internal/discussion/internal/event"
	"github.com/labelhub/labelhub/internal/discussion/internal/job"
	"github.com/labelhub/labelhub/internal/discussion/internal/repository"
	"github.com/labelhub/labelhub/internal/discussion/internal/repository/cache"
	"github.com/labelhub/labelhub/internal/discussion/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/discussion/internal/service"
	"github.com/labelhub/labelhub/internal/discussion/internal/web"
	"github.com/labelhub/labelhub/internal/pkg/idgen"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Service = service.Service
type MemberChecker = service.MemberChecker
type Handler = web.Handler
type Discussion = domain.Discussion
type Comment = domain.Comment
type Status = domain.Status
type ReconcilePendingClosuresJob = job.ReconcilePendingClosuresJob

const (
	StatusActive         = domain.StatusActive
	StatusPendingClosure = domain.StatusPendingClosure
	StatusClosed         = domain.StatusClosed
)

var (
	ErrActiveDiscussionExists = service.ErrActiveDiscussionExists
	ErrNoActiveDiscussion     = service.ErrNoActiveDiscussion
)

type Module struct {
	Svc          Service
	Hdl          *Handler
	ReconcileJob *ReconcilePendingClosuresJob
}

var (
	once   = &sync.Once{}
	module *Module
)

func InitModule(db *egorm.Component, ec ecache.Cache, cmd redis.Cmdable, q mq.MQ,
	gen idgen.Generator, members MemberChecker) (*Module, error) {
	once.Do(func() {
		initTableOnce(db)
		producer, err := event.NewCommentEventProducer(q)
		if err != nil {
			elog.DefaultLogger.Error("初始化评论事件生产者失败", elog.FieldErr(err))
			producer = noopProducer{}
		}
		repo := repository.NewDiscussionRepository(
			dao.NewDiscussionGORMDAO(db),
			cache.NewDiscussionCache(ec, cmd))
		svc := service.NewService(repo, members, gen, producer)
		module = &Module{
			Svc:          svc,
			Hdl:          web.NewHandler(svc),
			ReconcileJob: job.NewReconcilePendingClosuresJob(svc),
		}
	})
	return module, nil
}

type noopProducer struct{}

func (noopProducer) Produce(ctx context.Context, evt event.CommentEvent) error {
	return nil
}

var daoOnce = sync.Once{}

func initTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}
