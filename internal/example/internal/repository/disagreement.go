package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labelhub/labelhub/internal/example/internal/domain"
	"github.com/labelhub/labelhub/internal/example/internal/repository/dao"
)

//go:generate mockgen -source=./disagreement.go -package=repomocks -destination=mocks/disagreement.mock.go DisagreementRepository
type DisagreementRepository interface {
	GetOrCreate(ctx context.Context, exampleID, projectID int64, uids []int64) (domain.Disagreement, error)
	GetByExample(ctx context.Context, exampleID int64) (domain.Disagreement, error)
	Resolve(ctx context.Context, exampleID int64) error
	List(ctx context.Context, projectID int64, unresolvedOnly bool, offset, limit int) ([]domain.Disagreement, error)
	Count(ctx context.Context, projectID int64, unresolvedOnly bool) (int64, error)
}

type disagreementRepository struct {
	dao dao.DisagreementDAO
}

func NewDisagreementRepository(d dao.DisagreementDAO) DisagreementRepository {
	return &disagreementRepository{dao: d}
}

func (repo *disagreementRepository) GetOrCreate(ctx context.Context,
	exampleID, projectID int64, uids []int64) (domain.Disagreement, error) {
	d, err := repo.dao.GetOrCreate(ctx, exampleID, projectID, uids)
	if err != nil {
		return domain.Disagreement{}, err
	}
	users, err := repo.dao.Users(ctx, []int64{d.Id})
	if err != nil {
		return domain.Disagreement{}, err
	}
	return repo.toDomain(d, users), nil
}

func (repo *disagreementRepository) GetByExample(ctx context.Context, exampleID int64) (domain.Disagreement, error) {
	d, err := repo.dao.GetByExample(ctx, exampleID)
	if err != nil {
		return domain.Disagreement{}, err
	}
	users, err := repo.dao.Users(ctx, []int64{d.Id})
	if err != nil {
		return domain.Disagreement{}, err
	}
	return repo.toDomain(d, users), nil
}

func (repo *disagreementRepository) Resolve(ctx context.Context, exampleID int64) error {
	return repo.dao.Resolve(ctx, exampleID)
}

func (repo *disagreementRepository) List(ctx context.Context,
	projectID int64, unresolvedOnly bool, offset, limit int) ([]domain.Disagreement, error) {
	ds, err := repo.dao.List(ctx, projectID, unresolvedOnly, offset, limit)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, nil
	}
	ids := slice.Map(ds, func(idx int, src dao.Disagreement) int64 {
		return src.Id
	})
	users, err := repo.dao.Users(ctx, ids)
	if err != nil {
		return nil, err
	}
	byDisagreement := make(map[int64][]dao.DisagreementUser, len(ds))
	for _, u := range users {
		byDisagreement[u.DisagreementId] = append(byDisagreement[u.DisagreementId], u)
	}
	return slice.Map(ds, func(idx int, src dao.Disagreement) domain.Disagreement {
		return repo.toDomain(src, byDisagreement[src.Id])
	}), nil
}

func (repo *disagreementRepository) Count(ctx context.Context, projectID int64, unresolvedOnly bool) (int64, error) {
	return repo.dao.Count(ctx, projectID, unresolvedOnly)
}

func (repo *disagreementRepository) toDomain(d dao.Disagreement, users []dao.DisagreementUser) domain.Disagreement {
	return domain.Disagreement{
		ID:        d.Id,
		ExampleID: d.ExampleId,
		ProjectID: d.ProjectId,
		Users: slice.Map(users, func(idx int, src dao.DisagreementUser) int64 {
			return src.Uid
		}),
		Resolved: d.Resolved,
		Ctime:    d.Ctime,
		Utime:    d.Utime,
	}
}
