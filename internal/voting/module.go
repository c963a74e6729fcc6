package voting

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/discussion"
	"github.com/labelhub/labelhub/internal/voting/internal/domain"
	"github.com/labelhub/labelhub/internal/voting/internal/repository"
	"github.com/labelhub/labelhub/internal/voting/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/voting/internal/service"
	"github.com/labelhub/labelhub/internal/voting/internal/web"
	"gorm.io/gorm"
)

type Service = service.Service
type GuidelineReader = service.GuidelineReader
type MemberProvider = service.MemberProvider
type Handler = web.Handler
type Session = domain.Session
type Vote = domain.Vote
type Tally = domain.Tally
type Status = domain.Status
type Result = service.Result

const (
	StatusNotStarted = domain.StatusNotStarted
	StatusVoting     = domain.StatusVoting
	StatusCompleted  = domain.StatusCompleted

	RatifyThreshold = domain.RatifyThreshold
)

type Module struct {
	Svc Service
	Hdl *Handler
}

var (
	once   = &sync.Once{}
	module *Module
)

func InitModule(db *egorm.Component,
	discussionModule *discussion.Module,
	guidelines GuidelineReader,
	members MemberProvider) (*Module, error) {
	once.Do(func() {
		initTableOnce(db)
		repo := repository.NewVotingRepository(dao.NewVotingGORMDAO(db))
		svc := service.NewService(repo, discussionModule.Svc, guidelines, members)
		module = &Module{
			Svc: svc,
			Hdl: web.NewHandler(svc),
		}
	})
	return module, nil
}

var daoOnce = sync.Once{}

func initTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			elog.DefaultLogger.Error("初始化投票表失败", elog.FieldErr(err))
		}
	})
}
