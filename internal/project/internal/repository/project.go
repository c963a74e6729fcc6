package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labelhub/labelhub/internal/project/internal/domain"
	"github.com/labelhub/labelhub/internal/project/internal/repository/dao"
)

var (
	ErrDuplicateMember = dao.ErrDuplicateMember
	ErrRecordNotFound  = dao.ErrRecordNotFound
)

type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	Update(ctx context.Context, p domain.Project) error
	Detail(ctx context.Context, id int64) (domain.Project, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error)
	SetLocked(ctx context.Context, id int64, locked bool) error
	SetPerspective(ctx context.Context, id, perspectiveID int64) error
	AddMember(ctx context.Context, m domain.Member) (int64, error)
	RemoveMember(ctx context.Context, projectID, uid int64) error
	Members(ctx context.Context, projectID int64) ([]domain.Member, error)
	Member(ctx context.Context, projectID, uid int64) (domain.Member, error)
	SaveTag(ctx context.Context, t domain.Tag) (int64, error)
	DeleteTag(ctx context.Context, projectID, tagID int64) error
	Tags(ctx context.Context, projectID int64) ([]domain.Tag, error)
}

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewProjectRepository(d dao.ProjectDAO) ProjectRepository {
	return &projectRepository{dao: d}
}

func (repo *projectRepository) Create(ctx context.Context, p domain.Project) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(p), p.CreatedBy)
}

func (repo *projectRepository) Update(ctx context.Context, p domain.Project) error {
	return repo.dao.Update(ctx, repo.toEntity(p))
}

func (repo *projectRepository) Detail(ctx context.Context, id int64) (domain.Project, error) {
	entity, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return repo.toDomain(entity), nil
}

func (repo *projectRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error) {
	entities, err := repo.dao.List(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), nil
}

func (repo *projectRepository) SetLocked(ctx context.Context, id int64, locked bool) error {
	return repo.dao.SetLocked(ctx, id, locked)
}

func (repo *projectRepository) SetPerspective(ctx context.Context, id, perspectiveID int64) error {
	return repo.dao.SetPerspective(ctx, id, perspectiveID)
}

func (repo *projectRepository) AddMember(ctx context.Context, m domain.Member) (int64, error) {
	return repo.dao.AddMember(ctx, dao.ProjectMember{
		ProjectId: m.ProjectID,
		Uid:       m.UID,
		Role:      string(m.Role),
	})
}

func (repo *projectRepository) RemoveMember(ctx context.Context, projectID, uid int64) error {
	return repo.dao.RemoveMember(ctx, projectID, uid)
}

func (repo *projectRepository) Members(ctx context.Context, projectID int64) ([]domain.Member, error) {
	ms, err := repo.dao.Members(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src dao.ProjectMember) domain.Member {
		return repo.memberToDomain(src)
	}), nil
}

func (repo *projectRepository) Member(ctx context.Context, projectID, uid int64) (domain.Member, error) {
	m, err := repo.dao.Member(ctx, projectID, uid)
	if err != nil {
		return domain.Member{}, err
	}
	return repo.memberToDomain(m), nil
}

func (repo *projectRepository) SaveTag(ctx context.Context, t domain.Tag) (int64, error) {
	return repo.dao.SaveTag(ctx, dao.ProjectTag{
		ProjectId: t.ProjectID,
		Text:      t.Text,
	})
}

func (repo *projectRepository) DeleteTag(ctx context.Context, projectID, tagID int64) error {
	return repo.dao.DeleteTag(ctx, projectID, tagID)
}

func (repo *projectRepository) Tags(ctx context.Context, projectID int64) ([]domain.Tag, error) {
	tags, err := repo.dao.Tags(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return slice.Map(tags, func(idx int, src dao.ProjectTag) domain.Tag {
		return domain.Tag{
			ID:        src.Id,
			ProjectID: src.ProjectId,
			Text:      src.Text,
		}
	}), nil
}

func (repo *projectRepository) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Type:          string(p.Type),
		Guideline:     p.Guideline,
		CreatedBy:     p.CreatedBy,
		Locked:        p.Locked,
		Collaborative: p.Collaborative,
		PerspectiveId: p.PerspectiveID,
		RandomOrder:   p.RandomOrder,
	}
}

func (repo *projectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		ID:            p.Id,
		Name:          p.Name,
		Description:   p.Description,
		Type:          domain.ProjectType(p.Type),
		Guideline:     p.Guideline,
		CreatedBy:     p.CreatedBy,
		Locked:        p.Locked,
		Collaborative: p.Collaborative,
		PerspectiveID: p.PerspectiveId,
		RandomOrder:   p.RandomOrder,
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}

func (repo *projectRepository) memberToDomain(m dao.ProjectMember) domain.Member {
	return domain.Member{
		ID:        m.Id,
		ProjectID: m.ProjectId,
		UID:       m.Uid,
		Role:      domain.Role(m.Role),
		Ctime:     m.Ctime,
	}
}
