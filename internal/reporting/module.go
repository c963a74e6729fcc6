package reporting

import (
	"sync"

	"github.com/labelhub/labelhub/internal/annotation"
	"github.com/labelhub/labelhub/internal/example"
	"github.com/labelhub/labelhub/internal/label"
	"github.com/labelhub/labelhub/internal/perspective"
	"github.com/labelhub/labelhub/internal/project"
	"github.com/labelhub/labelhub/internal/reporting/internal/domain"
	"github.com/labelhub/labelhub/internal/reporting/internal/service"
	"github.com/labelhub/labelhub/internal/reporting/internal/web"
)

type Service = service.Service
type Handler = web.Handler
type DisagreementStats = domain.DisagreementStats
type FlaggedExample = domain.FlaggedExample
type MemberComparison = domain.MemberComparison
type LabelDistribution = domain.LabelDistribution
type ValueShare = domain.ValueShare
type View = domain.View

const (
	ViewAll          = domain.ViewAll
	ViewAgreement    = domain.ViewAgreement
	ViewDisagreement = domain.ViewDisagreement

	DefaultThreshold    = domain.DefaultThreshold
	AgreementRateBucket = domain.AgreementRateBucket
)

type Module struct {
	Svc Service
	Hdl *Handler
}

var (
	once   = &sync.Once{}
	module *Module
)

func InitModule(exampleModule *example.Module,
	projectModule *project.Module,
	perspectiveModule *perspective.Module,
	labelModule *label.Module) (*Module, error) {
	once.Do(func() {
		svc := service.NewService(
			exampleModule.Svc,
			projectModule.Svc,
			perspectiveModule.Svc,
			annotation.NewExtractor(labelModule.Reader))
		module = &Module{
			Svc: svc,
			Hdl: web.NewHandler(svc),
		}
	})
	return module, nil
}
