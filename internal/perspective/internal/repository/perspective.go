package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labelhub/labelhub/internal/perspective/internal/domain"
	"github.com/labelhub/labelhub/internal/perspective/internal/repository/dao"
)

var (
	ErrDuplicatePerspective = dao.ErrDuplicatePerspective
	ErrDuplicateDescription = dao.ErrDuplicateDescription
	ErrRecordNotFound       = dao.ErrRecordNotFound
)

type PerspectiveRepository interface {
	Create(ctx context.Context, p domain.Perspective) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Perspective, error)
	List(ctx context.Context, offset, limit int) ([]domain.Perspective, error)
	Attributes(ctx context.Context, perspectiveID int64) ([]domain.Attribute, error)
	Attribute(ctx context.Context, attrID int64) (domain.Attribute, error)
	SaveDescription(ctx context.Context, d domain.Description) (int64, error)
	Descriptions(ctx context.Context, perspectiveID int64, memberIDs []int64, attrNames []string) ([]domain.Description, error)
	DistinctValues(ctx context.Context, perspectiveID int64, attrNames []string) (map[string][]string, error)
}

type perspectiveRepository struct {
	dao dao.PerspectiveDAO
}

func NewPerspectiveRepository(d dao.PerspectiveDAO) PerspectiveRepository {
	return &perspectiveRepository{dao: d}
}

func (repo *perspectiveRepository) Create(ctx context.Context, p domain.Perspective) (int64, error) {
	entity := dao.Perspective{
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
	}
	attrs := make([]dao.PerspectiveAttribute, 0, len(p.Attributes))
	options := make(map[int][]string, len(p.Attributes))
	for i, attr := range p.Attributes {
		attrs = append(attrs, dao.PerspectiveAttribute{
			Name: attr.Name,
			Type: attr.Type.String(),
		})
		if len(attr.Options) > 0 {
			options[i] = attr.Options
		}
	}
	return repo.dao.Create(ctx, entity, attrs, options)
}

func (repo *perspectiveRepository) Detail(ctx context.Context, id int64) (domain.Perspective, error) {
	entity, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Perspective{}, err
	}
	res := repo.toDomain(entity)
	res.Attributes, err = repo.Attributes(ctx, id)
	return res, err
}

func (repo *perspectiveRepository) List(ctx context.Context, offset, limit int) ([]domain.Perspective, error) {
	entities, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Perspective) domain.Perspective {
		return repo.toDomain(src)
	}), nil
}

func (repo *perspectiveRepository) Attributes(ctx context.Context, perspectiveID int64) ([]domain.Attribute, error) {
	attrs, err := repo.dao.AttributesByPerspective(ctx, perspectiveID)
	if err != nil {
		return nil, err
	}
	ids := slice.Map(attrs, func(idx int, src dao.PerspectiveAttribute) int64 {
		return src.Id
	})
	opts, err := repo.dao.OptionsByAttributes(ctx, ids)
	if err != nil {
		return nil, err
	}
	byAttr := make(map[int64][]string, len(attrs))
	for _, opt := range opts {
		byAttr[opt.AttributeId] = append(byAttr[opt.AttributeId], opt.Value)
	}
	return slice.Map(attrs, func(idx int, src dao.PerspectiveAttribute) domain.Attribute {
		return domain.Attribute{
			ID:            src.Id,
			PerspectiveID: src.PerspectiveId,
			Name:          src.Name,
			Type:          domain.AttributeType(src.Type),
			Options:       byAttr[src.Id],
		}
	}), nil
}

func (repo *perspectiveRepository) Attribute(ctx context.Context, attrID int64) (domain.Attribute, error) {
	entity, err := repo.dao.GetAttribute(ctx, attrID)
	if err != nil {
		return domain.Attribute{}, err
	}
	opts, err := repo.dao.OptionsByAttributes(ctx, []int64{attrID})
	if err != nil {
		return domain.Attribute{}, err
	}
	return domain.Attribute{
		ID:            entity.Id,
		PerspectiveID: entity.PerspectiveId,
		Name:          entity.Name,
		Type:          domain.AttributeType(entity.Type),
		Options: slice.Map(opts, func(idx int, src dao.AttributeOption) string {
			return src.Value
		}),
	}, nil
}

func (repo *perspectiveRepository) SaveDescription(ctx context.Context, d domain.Description) (int64, error) {
	return repo.dao.CreateDescription(ctx, dao.AttributeDescription{
		MemberId:    d.MemberID,
		AttributeId: d.AttributeID,
		Value:       d.Value,
	})
}

func (repo *perspectiveRepository) Descriptions(ctx context.Context,
	perspectiveID int64, memberIDs []int64, attrNames []string) ([]domain.Description, error) {
	rows, err := repo.dao.DescriptionsByMembers(ctx, perspectiveID, memberIDs, attrNames)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.DescriptionWithAttribute) domain.Description {
		return domain.Description{
			ID:            src.Id,
			MemberID:      src.MemberId,
			AttributeID:   src.AttributeId,
			AttributeName: src.AttributeName,
			Value:         src.Value,
			Ctime:         src.Ctime,
		}
	}), nil
}

func (repo *perspectiveRepository) DistinctValues(ctx context.Context,
	perspectiveID int64, attrNames []string) (map[string][]string, error) {
	rows, err := repo.dao.DistinctDescriptions(ctx, perspectiveID, attrNames)
	if err != nil {
		return nil, err
	}
	res := make(map[string][]string, len(rows))
	for _, row := range rows {
		res[row.AttributeName] = append(res[row.AttributeName], row.Value)
	}
	return res, nil
}

func (repo *perspectiveRepository) toDomain(src dao.Perspective) domain.Perspective {
	return domain.Perspective{
		ID:          src.Id,
		Name:        src.Name,
		Description: src.Description,
		CreatedBy:   src.CreatedBy,
		Ctime:       src.Ctime,
	}
}
