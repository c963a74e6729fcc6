package user

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/labelhub/labelhub/internal/email"
	"github.com/labelhub/labelhub/internal/user/internal/domain"
	"github.com/labelhub/labelhub/internal/user/internal/repository"
	"github.com/labelhub/labelhub/internal/user/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/user/internal/service"
	"github.com/labelhub/labelhub/internal/user/internal/web"
	"gorm.io/gorm"
)

type UserService = service.UserService
type Handler = web.Handler
type User = domain.User

type Module struct {
	Svc UserService
	Hdl *Handler
}

var (
	once   = &sync.Once{}
	module *Module
)

func InitModule(db *egorm.Component, emailSvc email.Service) (*Module, error) {
	once.Do(func() {
		initTableOnce(db)
		repo := repository.NewUserRepository(dao.NewUserGORMDAO(db))
		svc := service.NewUserService(repo, emailSvc)
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
			panic(err)
		}
	})
}
