package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/labelhub/labelhub/internal/discussion/internal/domain"
	"github.com/labelhub/labelhub/internal/discussion/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/discussion")
	g.POST("/start", ginx.BS[StartReq](h.Start))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/active", ginx.B[ProjectIDReq](h.Active))
	g.POST("/close", ginx.B[IDReq](h.Close))
	g.POST("/cancel-closure", ginx.B[IDReq](h.CancelClosure))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/comment/add", ginx.BS[AddCommentReq](h.AddComment))
	g.POST("/comment/update", ginx.BS[UpdateCommentReq](h.UpdateComment))
	g.POST("/comment/delete", ginx.BS[IDReq](h.DeleteComment))
	g.POST("/comment/sync", ginx.BS[SyncCommentsReq](h.SyncComments))
	g.POST("/comment/list", ginx.B[CommentsReq](h.Comments))
}

func (h *Handler) Start(ctx *ginx.Context, req StartReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Start(ctx, domain.Discussion{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		CreatedBy: sess.Claims().Uid,
	})
	switch {
	case errors.Is(err, service.ErrActiveDiscussionExists):
		return activeExistsResult, nil
	case errors.Is(err, service.ErrNotProjectMember):
		return notMemberResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	d, err := h.svc.Detail(ctx, req.ID)
	if errors.Is(err, service.ErrDiscussionNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDiscussion(d),
	}, nil
}

func (h *Handler) Active(ctx *ginx.Context, req ProjectIDReq) (ginx.Result, error) {
	d, err := h.svc.Active(ctx, req.ProjectID)
	if errors.Is(err, service.ErrNoActiveDiscussion) {
		return noActiveResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDiscussion(d),
	}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	status, err := h.svc.Close(ctx, req.ID)
	switch {
	case errors.Is(err, service.ErrDiscussionNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrDiscussionClosed):
		return closedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CloseResp{
			Status: string(status),
		},
	}, nil
}

func (h *Handler) CancelClosure(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.CancelClosure(ctx, req.ID)
	if errors.Is(err, service.ErrNoPendingClosure) {
		return noPendingClosureResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ds, err := h.svc.List(ctx, req.ProjectID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DiscussionList{
			Discussions: slice.Map(ds, func(idx int, src domain.Discussion) Discussion {
				return newDiscussion(src)
			}),
		},
	}, nil
}

func (h *Handler) AddComment(ctx *ginx.Context, req AddCommentReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.AddComment(ctx, domain.Comment{
		DiscussionID: req.DiscussionID,
		UID:          sess.Claims().Uid,
		Content:      req.Content,
		TempID:       req.TempID,
	})
	switch {
	case errors.Is(err, service.ErrDiscussionNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrDiscussionClosed):
		return closedResult, nil
	case errors.Is(err, service.ErrNotProjectMember):
		return notMemberResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) UpdateComment(ctx *ginx.Context, req UpdateCommentReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateComment(ctx, domain.Comment{
		ID:      req.ID,
		UID:     sess.Claims().Uid,
		Content: req.Content,
	})
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		return commentNotFoundResult, nil
	case errors.Is(err, service.ErrNotCommentAuthor):
		return notAuthorResult, nil
	case errors.Is(err, service.ErrDiscussionClosed):
		return closedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) DeleteComment(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteComment(ctx, req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		return commentNotFoundResult, nil
	case errors.Is(err, service.ErrNotCommentAuthor):
		return notAuthorResult, nil
	case errors.Is(err, service.ErrDiscussionClosed):
		return closedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) SyncComments(ctx *ginx.Context, req SyncCommentsReq, sess session.Session) (ginx.Result, error) {
	synced, err := h.svc.SyncComments(ctx, req.DiscussionID, sess.Claims().Uid,
		slice.Map(req.Comments, func(idx int, src OfflineComment) domain.Comment {
			return domain.Comment{
				Content: src.Content,
				TempID:  src.TempID,
			}
		}))
	switch {
	case errors.Is(err, service.ErrDiscussionClosed):
		return closedResult, nil
	case errors.Is(err, service.ErrNotProjectMember):
		return notMemberResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SyncCommentsResp{
			Synced: synced,
		},
	}, nil
}

func (h *Handler) Comments(ctx *ginx.Context, req CommentsReq) (ginx.Result, error) {
	cs, total, err := h.svc.Comments(ctx, req.DiscussionID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CommentList{
			Comments: slice.Map(cs, func(idx int, src domain.Comment) Comment {
				return Comment{
					ID:           src.ID,
					DiscussionID: src.DiscussionID,
					UID:          src.UID,
					Content:      src.Content,
					TempID:       src.TempID,
					IsSynced:     src.IsSynced,
					Ctime:        src.Ctime,
				}
			}),
			Total: total,
		},
	}, nil
}

func newDiscussion(src domain.Discussion) Discussion {
	return Discussion{
		ID:        src.ID,
		ProjectID: src.ProjectID,
		Title:     src.Title,
		Status:    string(src.Status),
		CreatedBy: src.CreatedBy,
		Ctime:     src.Ctime,
		Utime:     src.Utime,
	}
}
