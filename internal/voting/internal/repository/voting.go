package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labelhub/labelhub/internal/voting/internal/domain"
	"github.com/labelhub/labelhub/internal/voting/internal/repository/dao"
)

var (
	ErrDuplicateVote     = dao.ErrDuplicateVote
	ErrInvalidTransition = dao.ErrInvalidTransition
	ErrRecordNotFound    = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./voting.go -package=repomocks -destination=mocks/voting.mock.go VotingRepository
type VotingRepository interface {
	Create(ctx context.Context, s domain.Session) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Session, error)
	Latest(ctx context.Context, projectID int64) (domain.Session, error)
	LatestByStatus(ctx context.Context, projectID int64, status domain.Status) (domain.Session, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Session, error)
	Begin(ctx context.Context, id, discussionID int64, guideline string) error
	Complete(ctx context.Context, id int64) error
	CompleteAllActive(ctx context.Context, projectID int64) error

	SaveVote(ctx context.Context, v domain.Vote) (int64, error)
	Tally(ctx context.Context, sessionID int64) (domain.Tally, error)
}

type votingRepository struct {
	dao dao.VotingDAO
}

func NewVotingRepository(d dao.VotingDAO) VotingRepository {
	return &votingRepository{dao: d}
}

func (repo *votingRepository) Create(ctx context.Context, s domain.Session) (int64, error) {
	return repo.dao.Create(ctx, dao.Session{
		ProjectId:        s.ProjectID,
		DiscussionId:     s.DiscussionID,
		Guideline:        s.Guideline,
		Status:           string(s.Status),
		PreviousVotingId: s.PreviousVotingID,
	})
}

func (repo *votingRepository) Detail(ctx context.Context, id int64) (domain.Session, error) {
	s, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	return repo.toDomain(s), nil
}

func (repo *votingRepository) Latest(ctx context.Context, projectID int64) (domain.Session, error) {
	s, err := repo.dao.Latest(ctx, projectID)
	if err != nil {
		return domain.Session{}, err
	}
	return repo.toDomain(s), nil
}

func (repo *votingRepository) LatestByStatus(ctx context.Context, projectID int64, status domain.Status) (domain.Session, error) {
	s, err := repo.dao.LatestByStatus(ctx, projectID, string(status))
	if err != nil {
		return domain.Session{}, err
	}
	return repo.toDomain(s), nil
}

func (repo *votingRepository) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Session, error) {
	ss, err := repo.dao.List(ctx, projectID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.Session) domain.Session {
		return repo.toDomain(src)
	}), nil
}

func (repo *votingRepository) Begin(ctx context.Context, id, discussionID int64, guideline string) error {
	return repo.dao.Begin(ctx, id, discussionID, guideline)
}

func (repo *votingRepository) Complete(ctx context.Context, id int64) error {
	return repo.dao.Complete(ctx, id)
}

func (repo *votingRepository) CompleteAllActive(ctx context.Context, projectID int64) error {
	return repo.dao.CompleteAllActive(ctx, projectID)
}

func (repo *votingRepository) SaveVote(ctx context.Context, v domain.Vote) (int64, error) {
	return repo.dao.CreateVote(ctx, dao.Vote{
		SessionId: v.SessionID,
		Uid:       v.UID,
		Agree:     v.Agree,
	})
}

func (repo *votingRepository) Tally(ctx context.Context, sessionID int64) (domain.Tally, error) {
	agree, disagree, err := repo.dao.Tally(ctx, sessionID)
	if err != nil {
		return domain.Tally{}, err
	}
	return domain.Tally{
		Agree:    agree,
		Disagree: disagree,
	}, nil
}

func (repo *votingRepository) toDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:               s.Id,
		ProjectID:        s.ProjectId,
		DiscussionID:     s.DiscussionId,
		Guideline:        s.Guideline,
		Status:           domain.Status(s.Status),
		PreviousVotingID: s.PreviousVotingId,
		StartedAt:        s.StartedAt,
		EndedAt:          s.EndedAt,
		Ctime:            s.Ctime,
		Utime:            s.Utime,
	}
}
