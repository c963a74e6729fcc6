package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labelhub/labelhub/internal/example/internal/domain"
	"github.com/labelhub/labelhub/internal/example/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./example.go -package=repomocks -destination=mocks/example.mock.go ExampleRepository
type ExampleRepository interface {
	Create(ctx context.Context, e domain.Example) (int64, error)
	BatchCreate(ctx context.Context, es []domain.Example) error
	Detail(ctx context.Context, id int64) (domain.Example, error)
	DetailByUUID(ctx context.Context, uuid string) (domain.Example, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Example, error)
	Count(ctx context.Context, projectID int64) (int64, error)
	Delete(ctx context.Context, id int64) error

	Confirm(ctx context.Context, s domain.ExampleState) error
	Revoke(ctx context.Context, exampleID, uid int64) error
	RevokeAll(ctx context.Context, exampleID int64) error
	States(ctx context.Context, exampleID int64) ([]domain.ExampleState, error)
	ResetStates(ctx context.Context, projectID int64) error
	MultiConfirmedExamples(ctx context.Context, projectID int64, minStates int64) ([]int64, error)
}

type exampleRepository struct {
	dao dao.ExampleDAO
}

func NewExampleRepository(d dao.ExampleDAO) ExampleRepository {
	return &exampleRepository{dao: d}
}

func (repo *exampleRepository) Create(ctx context.Context, e domain.Example) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(e))
}

func (repo *exampleRepository) BatchCreate(ctx context.Context, es []domain.Example) error {
	return repo.dao.BatchCreate(ctx, slice.Map(es, func(idx int, src domain.Example) dao.Example {
		return repo.toEntity(src)
	}))
}

func (repo *exampleRepository) Detail(ctx context.Context, id int64) (domain.Example, error) {
	e, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Example{}, err
	}
	return repo.toDomain(e), nil
}

func (repo *exampleRepository) DetailByUUID(ctx context.Context, uuid string) (domain.Example, error) {
	e, err := repo.dao.GetByUUID(ctx, uuid)
	if err != nil {
		return domain.Example{}, err
	}
	return repo.toDomain(e), nil
}

func (repo *exampleRepository) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Example, error) {
	es, err := repo.dao.List(ctx, projectID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.Example) domain.Example {
		return repo.toDomain(src)
	}), nil
}

func (repo *exampleRepository) Count(ctx context.Context, projectID int64) (int64, error) {
	return repo.dao.Count(ctx, projectID)
}

func (repo *exampleRepository) Delete(ctx context.Context, id int64) error {
	return repo.dao.Delete(ctx, id)
}

func (repo *exampleRepository) Confirm(ctx context.Context, s domain.ExampleState) error {
	return repo.dao.ConfirmState(ctx, dao.ExampleState{
		ExampleId: s.ExampleID,
		Uid:       s.UID,
	})
}

func (repo *exampleRepository) Revoke(ctx context.Context, exampleID, uid int64) error {
	return repo.dao.RevokeState(ctx, exampleID, uid)
}

func (repo *exampleRepository) RevokeAll(ctx context.Context, exampleID int64) error {
	return repo.dao.RevokeAllStates(ctx, exampleID)
}

func (repo *exampleRepository) States(ctx context.Context, exampleID int64) ([]domain.ExampleState, error) {
	ss, err := repo.dao.States(ctx, exampleID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.ExampleState) domain.ExampleState {
		return domain.ExampleState{
			ID:          src.Id,
			ExampleID:   src.ExampleId,
			UID:         src.Uid,
			ConfirmedAt: src.ConfirmedAt,
		}
	}), nil
}

func (repo *exampleRepository) ResetStates(ctx context.Context, projectID int64) error {
	return repo.dao.ResetStates(ctx, projectID)
}

func (repo *exampleRepository) MultiConfirmedExamples(ctx context.Context, projectID int64, minStates int64) ([]int64, error) {
	return repo.dao.MultiConfirmedExamples(ctx, projectID, minStates)
}

func (repo *exampleRepository) toEntity(e domain.Example) dao.Example {
	return dao.Example{
		Id:        e.ID,
		Uuid:      e.UUID,
		ProjectId: e.ProjectID,
		Text:      e.Text,
		Meta:      dao.Meta(e.Meta),
		Filename:  e.Filename,
	}
}

func (repo *exampleRepository) toDomain(e dao.Example) domain.Example {
	return domain.Example{
		ID:        e.Id,
		UUID:      e.Uuid,
		ProjectID: e.ProjectId,
		Text:      e.Text,
		Meta:      map[string]any(e.Meta),
		Filename:  e.Filename,
		Ctime:     e.Ctime,
		Utime:     e.Utime,
	}
}
