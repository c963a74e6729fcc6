package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/labelhub/labelhub/internal/user/internal/domain"
	"github.com/labelhub/labelhub/internal/user/internal/errs"
	"github.com/labelhub/labelhub/internal/user/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicatedResult = ginx.Result{
		Code: errs.UserDuplicated.Code,
		Msg:  errs.UserDuplicated.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	welcomeMailFailedResult = ginx.Result{
		Code: errs.WelcomeMailFailed.Code,
		Msg:  errs.WelcomeMailFailed.Msg,
	}
)

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.GET("/profile", ginx.S(h.Profile))
	g.POST("/edit", ginx.BS[EditReq](h.Edit))
	g.POST("/batch-profile", ginx.B[BatchProfileReq](h.BatchProfiles))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u, err := h.svc.Register(ctx, domain.User{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if errors.Is(err, service.ErrDuplicateUser) {
		return duplicatedResult, nil
	}
	// 账号已经建好，只是邮件没发出去，照样把资料带回去
	if errors.Is(err, service.ErrWelcomeMailFailed) {
		res := welcomeMailFailedResult
		res.Data = newProfile(u)
		return res, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return invalidCredentialsResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.ID).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateProfile(ctx, domain.User{
		ID:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) BatchProfiles(ctx *ginx.Context, req BatchProfileReq) (ginx.Result, error) {
	us, err := h.svc.BatchProfiles(ctx, req.IDs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProfileList{
			Profiles: slice.Map(us, func(idx int, src domain.User) Profile {
				return newProfile(src)
			}),
		},
	}, nil
}

func newProfile(u domain.User) Profile {
	return Profile{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
