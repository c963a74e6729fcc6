package label

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/labelhub/labelhub/internal/label/internal/domain"
	"github.com/labelhub/labelhub/internal/label/internal/repository"
	"github.com/labelhub/labelhub/internal/label/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/label/internal/service"
	"gorm.io/gorm"
)

type Reader = service.Reader
type Category = domain.Category
type CategoryLabel = domain.CategoryLabel

type Module struct {
	Reader Reader
}

var (
	once   = &sync.Once{}
	reader service.Reader
)

func InitModule(db *egorm.Component) (*Module, error) {
	return &Module{Reader: InitReader(db)}, nil
}

func InitReader(db *egorm.Component) Reader {
	once.Do(func() {
		initTableOnce(db)
		d := dao.NewLabelGORMDAO(db)
		r := repository.NewLabelRepository(d)
		reader = service.NewReader(r)
	})
	return reader
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
