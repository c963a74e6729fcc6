package perspective

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/labelhub/labelhub/internal/perspective/internal/domain"
	"github.com/labelhub/labelhub/internal/perspective/internal/repository"
	"github.com/labelhub/labelhub/internal/perspective/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/perspective/internal/service"
	"github.com/labelhub/labelhub/internal/perspective/internal/web"
	"gorm.io/gorm"
)

type Service = service.Service
type Handler = web.Handler
type Perspective = domain.Perspective
type Attribute = domain.Attribute
type AttributeType = domain.AttributeType
type Description = domain.Description

const (
	AttributeTypeText    = domain.AttributeTypeText
	AttributeTypeNumber  = domain.AttributeTypeNumber
	AttributeTypeBoolean = domain.AttributeTypeBoolean
	AttributeTypeList    = domain.AttributeTypeList
)

type Module struct {
	Svc Service
	Hdl *Handler
}

var (
	once   = &sync.Once{}
	module *Module
)

func InitModule(db *egorm.Component) (*Module, error) {
	once.Do(func() {
		initTableOnce(db)
		d := dao.NewPerspectiveGORMDAO(db)
		repo := repository.NewPerspectiveRepository(d)
		svc := service.NewService(repo)
		module = &Module{
			Svc: svc,
			Hdl: web.NewHandler(svc),
		}
	})
	return module, nil
}

func InitService(db *egorm.Component) Service {
	m, err := InitModule(db)
	if err != nil {
		panic(err)
	}
	return m.Svc
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
