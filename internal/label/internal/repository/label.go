package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labelhub/labelhub/internal/label/internal/domain"
	"github.com/labelhub/labelhub/internal/label/internal/repository/dao"
)

type LabelRepository interface {
	FindByExampleAndUser(ctx context.Context, exampleID, uid int64) ([]domain.Category, error)
}

type labelRepository struct {
	dao dao.LabelDAO
}

func NewLabelRepository(d dao.LabelDAO) LabelRepository {
	return &labelRepository{dao: d}
}

func (r *labelRepository) FindByExampleAndUser(ctx context.Context, exampleID, uid int64) ([]domain.Category, error) {
	cs, err := r.dao.FindByExampleAndUser(ctx, exampleID, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.CategoryWithLabel) domain.Category {
		return domain.Category{
			ID:        src.Id,
			ExampleID: src.ExampleId,
			UID:       src.Uid,
			Label: domain.CategoryLabel{
				ID:   src.LabelId,
				Text: src.LabelText,
			},
		}
	}), nil
}
