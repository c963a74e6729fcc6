package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/labelhub/labelhub/internal/perspective/internal/domain"
	"github.com/labelhub/labelhub/internal/perspective/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/perspective")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/attrs", ginx.B[IDReq](h.Attributes))
	g.POST("/describe", ginx.B[DescribeReq](h.Describe))
	g.POST("/descriptions", ginx.B[DescriptionsReq](h.Descriptions))
	g.POST("/values", ginx.B[DescriptionsReq](h.DistinctValues))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Perspective{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   sess.Claims().Uid,
		Attributes: slice.Map(req.Attributes, func(idx int, src Attribute) domain.Attribute {
			return domain.Attribute{
				Name:    src.Name,
				Type:    domain.AttributeType(src.Type),
				Options: src.Options,
			}
		}),
	})
	switch {
	case errors.Is(err, service.ErrDuplicatePerspective):
		return duplicatedResult, nil
	case errors.Is(err, service.ErrInvalidAttribute):
		return invalidAttributeResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrPerspectiveNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPerspective(p),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PerspectiveList{
			Perspectives: slice.Map(ps, func(idx int, src domain.Perspective) Perspective {
				return newPerspective(src)
			}),
		},
	}, nil
}

func (h *Handler) Attributes(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	attrs, err := h.svc.Attributes(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AttributeList{
			Attributes: newAttributes(attrs),
		},
	}, nil
}

func (h *Handler) Describe(ctx *ginx.Context, req DescribeReq) (ginx.Result, error) {
	id, err := h.svc.Describe(ctx, domain.Description{
		MemberID:    req.MemberID,
		AttributeID: req.AttributeID,
		Value:       req.Value,
	})
	switch {
	case errors.Is(err, service.ErrInvalidAttributeValue):
		return invalidValueResult, nil
	case errors.Is(err, service.ErrDuplicateDescription):
		return duplicatedDescriptionResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Descriptions(ctx *ginx.Context, req DescriptionsReq) (ginx.Result, error) {
	descs, err := h.svc.Descriptions(ctx, req.PerspectiveID, req.MemberIDs, req.Attributes)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DescriptionList{
			Descriptions: slice.Map(descs, func(idx int, src domain.Description) Description {
				return Description{
					ID:            src.ID,
					MemberID:      src.MemberID,
					AttributeID:   src.AttributeID,
					AttributeName: src.AttributeName,
					Value:         src.Value,
					Ctime:         src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *Handler) DistinctValues(ctx *ginx.Context, req DescriptionsReq) (ginx.Result, error) {
	values, err := h.svc.DistinctValues(ctx, req.PerspectiveID, req.Attributes)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DistinctValuesResp{
			Values: values,
		},
	}, nil
}

func newPerspective(src domain.Perspective) Perspective {
	return Perspective{
		ID:          src.ID,
		Name:        src.Name,
		Description: src.Description,
		CreatedBy:   src.CreatedBy,
		Attributes:  newAttributes(src.Attributes),
		Ctime:       src.Ctime,
	}
}

func newAttributes(attrs []domain.Attribute) []Attribute {
	return slice.Map(attrs, func(idx int, src domain.Attribute) Attribute {
		return Attribute{
			ID:      src.ID,
			Name:    src.Name,
			Type:    src.Type.String(),
			Options: src.Options,
		}
	})
}
