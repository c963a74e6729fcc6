//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/labelhub/labelhub/internal/discussion"
	"github.com/labelhub/labelhub/internal/example"
	"github.com/labelhub/labelhub/internal/label"
	"github.com/labelhub/labelhub/internal/perspective"
	"github.com/labelhub/labelhub/internal/project"
	"github.com/labelhub/labelhub/internal/reporting"
	"github.com/labelhub/labelhub/internal/user"
	"github.com/labelhub/labelhub/internal/voting"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		InitIDGenerator,
		InitEmailService,
		initVotingLifecycle,
		initProjectModule,
		initDiscussionModule,
		initVotingModule,
		user.InitModule,
		label.InitModule,
		perspective.InitModule,
		example.InitModule,
		reporting.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*project.Module), "Hdl"),
		wire.FieldsOf(new(*perspective.Module), "Hdl"),
		wire.FieldsOf(new(*example.Module), "Hdl"),
		wire.FieldsOf(new(*discussion.Module), "Hdl"),
		wire.FieldsOf(new(*voting.Module), "Hdl"),
		wire.FieldsOf(new(*reporting.Module), "Hdl"),
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
