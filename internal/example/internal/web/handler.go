package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/labelhub/labelhub/internal/example/internal/domain"
	"github.com/labelhub/labelhub/internal/example/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/example")
	g.POST("/create", ginx.B[CreateReq](h.Create))
	g.POST("/batch-create", ginx.B[BatchCreateReq](h.BatchCreate))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
	g.POST("/confirm", ginx.BS[IDReq](h.Toggle))
	g.POST("/states", ginx.B[IDReq](h.States))
	g.POST("/reset-confirmations", ginx.B[IDReq](h.ResetConfirmations))

	d := server.Group("/disagreement")
	d.POST("/detect", ginx.B[IDReq](h.Detect))
	d.POST("/resolve", ginx.B[IDReq](h.Resolve))
	d.POST("/list", ginx.B[DisagreementListReq](h.Disagreements))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Example{
		ProjectID: req.ProjectID,
		Text:      req.Text,
		Meta:      req.Meta,
		Filename:  req.Filename,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) BatchCreate(ctx *ginx.Context, req BatchCreateReq) (ginx.Result, error) {
	err := h.svc.BatchCreate(ctx, slice.Map(req.Examples, func(idx int, src CreateReq) domain.Example {
		return domain.Example{
			ProjectID: req.ProjectID,
			Text:      src.Text,
			Meta:      src.Meta,
			Filename:  src.Filename,
		}
	}))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	e, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrExampleNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newExample(e),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	es, total, err := h.svc.List(ctx, req.ProjectID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ExampleList{
			Examples: slice.Map(es, func(idx int, src domain.Example) Example {
				return newExample(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Toggle(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	confirmed, err := h.svc.Toggle(ctx, req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrExampleNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrProjectLocked):
		return lockedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ToggleResp{
			Confirmed: confirmed,
		},
	}, nil
}

func (h *Handler) States(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	states, err := h.svc.States(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StateList{
			States: slice.Map(states, func(idx int, src domain.ExampleState) State {
				return State{
					ID:          src.ID,
					ExampleID:   src.ExampleID,
					UID:         src.UID,
					ConfirmedAt: src.ConfirmedAt,
				}
			}),
		},
	}, nil
}

func (h *Handler) ResetConfirmations(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.ResetConfirmations(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Detect(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	d, flagged, err := h.svc.Detect(ctx, req.ID)
	if errors.Is(err, service.ErrExampleNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DetectResp{
			Flagged:      flagged,
			Disagreement: newDisagreement(d),
		},
	}, nil
}

func (h *Handler) Resolve(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.ResolveDisagreement(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Disagreements(ctx *ginx.Context, req DisagreementListReq) (ginx.Result, error) {
	ds, err := h.svc.Disagreements(ctx, req.ProjectID, req.UnresolvedOnly, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	total, err := h.svc.CountDisagreements(ctx, req.ProjectID, req.UnresolvedOnly)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DisagreementList{
			Disagreements: slice.Map(ds, func(idx int, src domain.Disagreement) Disagreement {
				return newDisagreement(src)
			}),
			Total: total,
		},
	}, nil
}

func newExample(src domain.Example) Example {
	return Example{
		ID:        src.ID,
		UUID:      src.UUID,
		ProjectID: src.ProjectID,
		Text:      src.Text,
		Meta:      src.Meta,
		Filename:  src.Filename,
		Ctime:     src.Ctime,
		Utime:     src.Utime,
	}
}

func newDisagreement(src domain.Disagreement) Disagreement {
	return Disagreement{
		ID:        src.ID,
		ExampleID: src.ExampleID,
		ProjectID: src.ProjectID,
		Users:     src.Users,
		Resolved:  src.Resolved,
		Ctime:     src.Ctime,
	}
}
