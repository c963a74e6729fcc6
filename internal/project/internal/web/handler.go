package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/labelhub/labelhub/internal/project/internal/domain"
	"github.com/labelhub/labelhub/internal/project/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/update", ginx.BS[UpdateReq](h.Update))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/lock", ginx.BS[IDReq](h.Lock))
	g.POST("/unlock", ginx.BS[IDReq](h.Unlock))
	g.POST("/perspective/assign", ginx.BS[AssignPerspectiveReq](h.AssignPerspective))
	g.POST("/member/add", ginx.BS[AddMemberReq](h.AddMember))
	g.POST("/member/remove", ginx.BS[RemoveMemberReq](h.RemoveMember))
	g.POST("/member/list", ginx.B[IDReq](h.Members))
	g.POST("/tag/save", ginx.B[SaveTagReq](h.SaveTag))
	g.POST("/tag/delete", ginx.B[DeleteTagReq](h.DeleteTag))
	g.POST("/tag/list", ginx.B[IDReq](h.Tags))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Project{
		Name:          req.Name,
		Description:   req.Description,
		Type:          domain.ProjectType(req.Type),
		Guideline:     req.Guideline,
		Collaborative: req.Collaborative,
		RandomOrder:   req.RandomOrder,
		CreatedBy:     sess.Claims().Uid,
	})
	if errors.Is(err, service.ErrInvalidType) {
		return invalidTypeResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx, sess.Claims().Uid, domain.Project{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Guideline:     req.Guideline,
		Collaborative: req.Collaborative,
		RandomOrder:   req.RandomOrder,
	})
	if errors.Is(err, service.ErrPermissionDenied) {
		return permissionDeniedResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrProjectNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProject(p),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	ps, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Projects: slice.Map(ps, func(idx int, src domain.Project) Project {
				return newProject(src)
			}),
		},
	}, nil
}

func (h *Handler) Lock(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Lock(ctx, sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrProjectLocked):
		return lockedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Unlock(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unlock(ctx, sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrProjectNotLocked):
		return notLockedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) AssignPerspective(ctx *ginx.Context, req AssignPerspectiveReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AssignPerspective(ctx, sess.Claims().Uid, req.ProjectID, req.PerspectiveID)
	if errors.Is(err, service.ErrPermissionDenied) {
		return permissionDeniedResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) AddMember(ctx *ginx.Context, req AddMemberReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.AddMember(ctx, sess.Claims().Uid, domain.Member{
		ProjectID: req.ProjectID,
		UID:       req.UID,
		Role:      domain.Role(req.Role),
	})
	switch {
	case errors.Is(err, service.ErrInvalidRole):
		return invalidRoleResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrDuplicateMember):
		return duplicateMemberResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) RemoveMember(ctx *ginx.Context, req RemoveMemberReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveMember(ctx, sess.Claims().Uid, req.ProjectID, req.UID)
	if errors.Is(err, service.ErrPermissionDenied) {
		return permissionDeniedResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Members(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	ms, err := h.svc.Members(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: MemberList{
			Members: slice.Map(ms, func(idx int, src domain.Member) Member {
				return Member{
					ID:        src.ID,
					ProjectID: src.ProjectID,
					UID:       src.UID,
					Role:      string(src.Role),
					Ctime:     src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *Handler) SaveTag(ctx *ginx.Context, req SaveTagReq) (ginx.Result, error) {
	id, err := h.svc.SaveTag(ctx, domain.Tag{
		ProjectID: req.ProjectID,
		Text:      req.Text,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) DeleteTag(ctx *ginx.Context, req DeleteTagReq) (ginx.Result, error) {
	err := h.svc.DeleteTag(ctx, req.ProjectID, req.TagID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Tags(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	tags, err := h.svc.Tags(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TagList{
			Tags: slice.Map(tags, func(idx int, src domain.Tag) Tag {
				return Tag{
					ID:        src.ID,
					ProjectID: src.ProjectID,
					Text:      src.Text,
				}
			}),
		},
	}, nil
}

func newProject(src domain.Project) Project {
	return Project{
		ID:            src.ID,
		Name:          src.Name,
		Description:   src.Description,
		Type:          string(src.Type),
		Guideline:     src.Guideline,
		CreatedBy:     src.CreatedBy,
		Locked:        src.Locked,
		Collaborative: src.Collaborative,
		PerspectiveID: src.PerspectiveID,
		RandomOrder:   src.RandomOrder,
		Ctime:         src.Ctime,
		Utime:         src.Utime,
	}
}
