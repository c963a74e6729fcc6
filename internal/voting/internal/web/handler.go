package web

import (
	"errors"
	"math"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/labelhub/labelhub/internal/voting/internal/domain"
	"github.com/labelhub/labelhub/internal/voting/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/voting")
	g.POST("/start", ginx.B[ProjectIDReq](h.Start))
	g.POST("/vote", ginx.BS[VoteReq](h.Vote))
	g.POST("/end", ginx.BS[IDReq](h.End))
	g.POST("/status", ginx.B[IDReq](h.Status))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/follow-up", ginx.BS[IDReq](h.CreateFollowUp))
}

func (h *Handler) Start(ctx *ginx.Context, req ProjectIDReq) (ginx.Result, error) {
	s, err := h.svc.Start(ctx, req.ProjectID)
	switch {
	case errors.Is(err, service.ErrNoActiveDiscussion):
		return noActiveDiscussionResult, nil
	case errors.Is(err, service.ErrVotingInProgress):
		return votingInProgressResult, nil
	case errors.Is(err, service.ErrSessionNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSession(s),
	}, nil
}

func (h *Handler) Vote(ctx *ginx.Context, req VoteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Vote(ctx, req.SessionID, sess.Claims().Uid, req.Agree)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidState):
		return invalidStateResult, nil
	case errors.Is(err, service.ErrNotProjectMember):
		return notMemberResult, nil
	case errors.Is(err, service.ErrDuplicateVote):
		return duplicateVoteResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) End(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.End(ctx, req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidState):
		return invalidStateResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEndResp(res),
	}, nil
}

func (h *Handler) Status(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	s, tally, err := h.svc.Status(ctx, req.ID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StatusResp{
			Session:      newSession(s),
			Agree:        tally.Agree,
			Disagree:     tally.Disagree,
			Total:        tally.Total(),
			AgreePercent: percent(tally.AgreeRatio()),
			Ratified:     tally.Ratified(),
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ss, err := h.svc.List(ctx, req.ProjectID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SessionList{
			Sessions: slice.Map(ss, func(idx int, src domain.Session) Session {
				return newSession(src)
			}),
		},
	}, nil
}

func (h *Handler) CreateFollowUp(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.CreateFollowUp(ctx, req.ID, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidState):
		return invalidStateResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newEndResp(res),
	}, nil
}

func newSession(s domain.Session) Session {
	return Session{
		ID:               s.ID,
		ProjectID:        s.ProjectID,
		DiscussionID:     s.DiscussionID,
		Guideline:        s.Guideline,
		Status:           string(s.Status),
		PreviousVotingID: s.PreviousVotingID,
		StartedAt:        s.StartedAt,
		EndedAt:          s.EndedAt,
	}
}

func newEndResp(res service.Result) EndResp {
	return EndResp{
		Agree:                res.Tally.Agree,
		Disagree:             res.Tally.Disagree,
		AgreePercent:         percent(res.Tally.AgreeRatio()),
		Ratified:             res.Ratified,
		FollowUpDiscussionID: res.FollowUpDiscussionID,
		FollowUpSessionID:    res.FollowUpSessionID,
	}
}

func percent(ratio float64) float64 {
	return math.Round(ratio*1000) / 10
}
