package example

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/annotation"
	"github.com/labelhub/labelhub/internal/example/internal/domain"
	"github.com/labelhub/labelhub/internal/example/internal/event"
	"github.com/labelhub/labelhub/internal/example/internal/repository"
	"github.com/labelhub/labelhub/internal/example/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/example/internal/service"
	"github.com/labelhub/labelhub/internal/example/internal/web"
	"github.com/labelhub/labelhub/internal/label"
	"github.com/labelhub/labelhub/internal/project"
	"gorm.io/gorm"
)

type Service = service.Service
type Handler = web.Handler
type Example = domain.Example
type ExampleState = domain.ExampleState
type Disagreement = domain.Disagreement

type Module struct {
	Svc Service
	Hdl *Handler
}

var (
	once   = &sync.Once{}
	module *Module
)

func InitModule(db *egorm.Component, q mq.MQ,
	labelModule *label.Module, projectModule *project.Module) (*Module, error) {
	once.Do(func() {
		initTableOnce(db)
		producer, err := event.NewConfirmationEventProducer(q)
		if err != nil {
			// 事件只是广播，建不出来降级成纯日志也能跑
			elog.DefaultLogger.Error("初始化确认事件生产者失败", elog.FieldErr(err))
			producer = noopProducer{}
		}
		repo := repository.NewExampleRepository(dao.NewExampleGORMDAO(db))
		disRepo := repository.NewDisagreementRepository(dao.NewDisagreementGORMDAO(db))
		svc := service.NewService(repo, disRepo,
			annotation.NewExtractor(labelModule.Reader),
			projectModule.Svc, producer)
		module = &Module{
			Svc: svc,
			Hdl: web.NewHandler(svc),
		}
	})
	return module, nil
}

type noopProducer struct{}

func (noopProducer) Produce(ctx context.Context, evt event.ConfirmedEvent) error {
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
