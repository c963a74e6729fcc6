package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/labelhub/labelhub/internal/discussion"
	"github.com/labelhub/labelhub/internal/example"
	"github.com/labelhub/labelhub/internal/perspective"
	"github.com/labelhub/labelhub/internal/pkg/middleware"
	"github.com/labelhub/labelhub/internal/project"
	"github.com/labelhub/labelhub/internal/reporting"
	"github.com/labelhub/labelhub/internal/user"
	"github.com/labelhub/labelhub/internal/voting"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	projectHdl *project.Handler,
	exampleHdl *example.Handler,
	perspectiveHdl *perspective.Handler,
	discussionHdl *discussion.Handler,
	votingHdl *voting.Handler,
	reportingHdl *reporting.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "labelhub.io")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	projectHdl.PrivateRoutes(res.Engine)
	exampleHdl.PrivateRoutes(res.Engine)
	perspectiveHdl.PrivateRoutes(res.Engine)
	discussionHdl.PrivateRoutes(res.Engine)
	votingHdl.PrivateRoutes(res.Engine)
	reportingHdl.PrivateRoutes(res.Engine)
	return res
}
