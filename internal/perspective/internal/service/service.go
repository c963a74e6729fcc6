package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/labelhub/labelhub/internal/perspective/internal/domain"
	"github.com/labelhub/labelhub/internal/perspective/internal/repository"
)

var (
	ErrDuplicatePerspective  = repository.ErrDuplicatePerspective
	ErrDuplicateDescription  = repository.ErrDuplicateDescription
	ErrPerspectiveNotFound   = repository.ErrRecordNotFound
	ErrInvalidAttribute      = errors.New("属性定义不合法")
	ErrInvalidAttributeValue = domain.ErrInvalidAttributeValue
)

//go:generate mockgen -source=./service.go -package=perspectivemocks -destination=../../mocks/perspective.mock.go Service
type Service interface {
	Create(ctx context.Context, p domain.Perspective) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Perspective, error)
	List(ctx context.Context, offset, limit int) ([]domain.Perspective, error)
	Attributes(ctx context.Context, perspectiveID int64) ([]domain.Attribute, error)
	// Describe 成员对某个属性给出自己的取值，取值必须符合属性声明的类型
	Describe(ctx context.Context, d domain.Description) (int64, error)
	Descriptions(ctx context.Context, perspectiveID int64, memberIDs []int64, attrNames []string) ([]domain.Description, error)
	// GroupedDescriptions 按成员聚合取值，供交叉统计使用
	GroupedDescriptions(ctx context.Context, perspectiveID int64, memberIDs []int64, attrNames []string) (map[int64]map[string]string, error)
	DistinctValues(ctx context.Context, perspectiveID int64, attrNames []string) (map[string][]string, error)
}

type service struct {
	repo repository.PerspectiveRepository
}

func NewService(repo repository.PerspectiveRepository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, p domain.Perspective) (int64, error) {
	for _, attr := range p.Attributes {
		if !attr.Type.Valid() {
			return 0, fmt.Errorf("%w: 未知属性类型 %s", ErrInvalidAttribute, attr.Type)
		}
		// 列表类型没有候选项就无从校验取值
		if attr.Type == domain.AttributeTypeList && len(attr.Options) == 0 {
			return 0, fmt.Errorf("%w: 列表属性 %s 缺少候选项", ErrInvalidAttribute, attr.Name)
		}
	}
	return svc.repo.Create(ctx, p)
}

func (svc *service) Detail(ctx context.Context, id int64) (domain.Perspective, error) {
	return svc.repo.Detail(ctx, id)
}

func (svc *service) List(ctx context.Context, offset, limit int) ([]domain.Perspective, error) {
	return svc.repo.List(ctx, offset, limit)
}

func (svc *service) Attributes(ctx context.Context, perspectiveID int64) ([]domain.Attribute, error) {
	return svc.repo.Attributes(ctx, perspectiveID)
}

func (svc *service) Describe(ctx context.Context, d domain.Description) (int64, error) {
	attr, err := svc.repo.Attribute(ctx, d.AttributeID)
	if err != nil {
		return 0, err
	}
	if err = attr.ValidateValue(d.Value); err != nil {
		return 0, err
	}
	return svc.repo.SaveDescription(ctx, d)
}

func (svc *service) Descriptions(ctx context.Context,
	perspectiveID int64, memberIDs []int64, attrNames []string) ([]domain.Description, error) {
	return svc.repo.Descriptions(ctx, perspectiveID, memberIDs, attrNames)
}

func (svc *service) GroupedDescriptions(ctx context.Context,
	perspectiveID int64, memberIDs []int64, attrNames []string) (map[int64]map[string]string, error) {
	descs, err := svc.repo.Descriptions(ctx, perspectiveID, memberIDs, attrNames)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]map[string]string, len(descs))
	for _, d := range descs {
		if _, ok := res[d.MemberID]; !ok {
			res[d.MemberID] = make(map[string]string, len(attrNames))
		}
		res[d.MemberID][d.AttributeName] = d.Value
	}
	return res, nil
}

func (svc *service) DistinctValues(ctx context.Context,
	perspectiveID int64, attrNames []string) (map[string][]string, error) {
	return svc.repo.DistinctValues(ctx, perspectiveID, attrNames)
}
