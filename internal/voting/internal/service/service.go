package service

import (
	"context"
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/discussion"
	"github.com/labelhub/labelhub/internal/voting/internal/domain"
	"github.com/labelhub/labelhub/internal/voting/internal/repository"
)

// FollowUpTitle 表决没通过时自动开的下一轮讨论
const FollowUpTitle = "Follow-up Discussion"

var (
	ErrSessionNotFound    = repository.ErrRecordNotFound
	ErrDuplicateVote      = repository.ErrDuplicateVote
	ErrInvalidState       = repository.ErrInvalidTransition
	ErrNoActiveDiscussion = errors.New("项目没有活跃讨论，无法开始投票")
	ErrVotingInProgress   = errors.New("已有进行中的投票")
	ErrNotProjectMember   = errors.New("不是项目成员")
)

// GuidelineReader 开始投票时抓取规范快照，由装配层注入
type GuidelineReader interface {
	Guideline(ctx context.Context, projectID int64) (string, error)
}

// MemberProvider 校验投票人资格，由装配层注入
type MemberProvider interface {
	IsMember(ctx context.Context, projectID, uid int64) (bool, error)
}

// Result 一轮表决结束后的结论
type Result struct {
	Session  domain.Session
	Tally    domain.Tally
	Ratified bool
	// FollowUpDiscussionID 没通过时新开的讨论
	FollowUpDiscussionID int64
	// FollowUpSessionID 没通过时链上的下一轮会话
	FollowUpSessionID int64
}

//go:generate mockgen -source=./service.go -package=votingmocks -destination=../../mocks/voting.mock.go Service
type Service interface {
	// PrepareSession 锁定项目时预建一轮待启动的会话，幂等
	PrepareSession(ctx context.Context, projectID int64) (int64, error)
	// Start 要求项目有活跃讨论，同时冻结当时的规范文本
	Start(ctx context.Context, projectID int64) (domain.Session, error)
	Vote(ctx context.Context, sessionID, uid int64, agree bool) error
	// End 结束表决并关闭关联讨论。赞成比例不过线（包括没人投票）
	// 时自动开下一轮讨论和会话
	End(ctx context.Context, sessionID, uid int64) (Result, error)
	Status(ctx context.Context, sessionID int64) (domain.Session, domain.Tally, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Session, error)
	// CompleteActive 解锁项目时把没结束的会话都完结掉，不再开后续轮次
	CompleteActive(ctx context.Context, projectID int64) error
	// CreateFollowUp 手工为没通过的一轮补开后续轮次
	CreateFollowUp(ctx context.Context, sessionID, uid int64) (Result, error)
}

type service struct {
	repo          repository.VotingRepository
	discussionSvc discussion.Service
	guidelines    GuidelineReader
	members       MemberProvider
	logger        *elog.Component
}

func NewService(repo repository.VotingRepository,
	discussionSvc discussion.Service,
	guidelines GuidelineReader,
	members MemberProvider) Service {
	return &service{
		repo:          repo,
		discussionSvc: discussionSvc,
		guidelines:    guidelines,
		members:       members,
		logger:        elog.DefaultLogger,
	}
}

func (svc *service) PrepareSession(ctx context.Context, projectID int64) (int64, error) {
	latest, err := svc.repo.Latest(ctx, projectID)
	if err == nil && latest.Status != domain.StatusCompleted {
		return latest.ID, nil
	}
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return 0, err
	}
	return svc.repo.Create(ctx, domain.Session{
		ProjectID: projectID,
		Status:    domain.StatusNotStarted,
	})
}

func (svc *service) Start(ctx context.Context, projectID int64) (domain.Session, error) {
	if _, err := svc.repo.LatestByStatus(ctx, projectID, domain.StatusVoting); err == nil {
		return domain.Session{}, ErrVotingInProgress
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Session{}, err
	}
	session, err := svc.repo.LatestByStatus(ctx, projectID, domain.StatusNotStarted)
	if err != nil {
		return domain.Session{}, err
	}
	active, err := svc.discussionSvc.Active(ctx, projectID)
	if errors.Is(err, discussion.ErrNoActiveDiscussion) {
		return domain.Session{}, ErrNoActiveDiscussion
	}
	if err != nil {
		return domain.Session{}, err
	}
	guideline, err := svc.guidelines.Guideline(ctx, projectID)
	if err != nil {
		return domain.Session{}, err
	}
	if err = svc.repo.Begin(ctx, session.ID, active.ID, guideline); err != nil {
		return domain.Session{}, err
	}
	return svc.repo.Detail(ctx, session.ID)
}

func (svc *service) Vote(ctx context.Context, sessionID, uid int64, agree bool) error {
	session, err := svc.repo.Detail(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Status != domain.StatusVoting {
		return ErrInvalidState
	}
	ok, err := svc.members.IsMember(ctx, session.ProjectID, uid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotProjectMember
	}
	_, err = svc.repo.SaveVote(ctx, domain.Vote{
		SessionID: sessionID,
		UID:       uid,
		Agree:     agree,
	})
	return err
}

func (svc *service) End(ctx context.Context, sessionID, uid int64) (Result, error) {
	session, err := svc.repo.Detail(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	if session.Status != domain.StatusVoting {
		return Result{}, ErrInvalidState
	}
	tally, err := svc.repo.Tally(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	if err = svc.repo.Complete(ctx, sessionID); err != nil {
		return Result{}, err
	}
	// 讨论关不掉也不回滚表决，pending_closure 会兜底
	if session.DiscussionID > 0 {
		if _, err = svc.discussionSvc.Close(ctx, session.DiscussionID); err != nil {
			svc.logger.Warn("结束表决后关闭讨论失败",
				elog.Int64("discussionID", session.DiscussionID), elog.FieldErr(err))
		}
	}
	res := Result{
		Session:  session,
		Tally:    tally,
		Ratified: tally.Ratified(),
	}
	res.Session.Status = domain.StatusCompleted
	if !res.Ratified {
		res.FollowUpDiscussionID, res.FollowUpSessionID, err = svc.spawnFollowUp(ctx, session, uid)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func (svc *service) Status(ctx context.Context, sessionID int64) (domain.Session, domain.Tally, error) {
	session, err := svc.repo.Detail(ctx, sessionID)
	if err != nil {
		return domain.Session{}, domain.Tally{}, err
	}
	tally, err := svc.repo.Tally(ctx, sessionID)
	return session, tally, err
}

func (svc *service) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Session, error) {
	return svc.repo.List(ctx, projectID, offset, limit)
}

func (svc *service) CompleteActive(ctx context.Context, projectID int64) error {
	return svc.repo.CompleteAllActive(ctx, projectID)
}

func (svc *service) CreateFollowUp(ctx context.Context, sessionID, uid int64) (Result, error) {
	session, err := svc.repo.Detail(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	if session.Status != domain.StatusCompleted {
		return Result{}, ErrInvalidState
	}
	tally, err := svc.repo.Tally(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Session:  session,
		Tally:    tally,
		Ratified: tally.Ratified(),
	}
	res.FollowUpDiscussionID, res.FollowUpSessionID, err = svc.spawnFollowUp(ctx, session, uid)
	return res, err
}

func (svc *service) spawnFollowUp(ctx context.Context, prev domain.Session, uid int64) (int64, int64, error) {
	discussionID, err := svc.discussionSvc.Start(ctx, discussion.Discussion{
		ProjectID: prev.ProjectID,
		Title:     FollowUpTitle,
		CreatedBy: uid,
	})
	if err != nil && !errors.Is(err, discussion.ErrActiveDiscussionExists) {
		return 0, 0, err
	}
	followUpID, err := svc.repo.Create(ctx, domain.Session{
		ProjectID:        prev.ProjectID,
		Status:           domain.StatusNotStarted,
		PreviousVotingID: prev.ID,
	})
	if err != nil {
		return discussionID, 0, err
	}
	return discussionID, followUpID, nil
}
