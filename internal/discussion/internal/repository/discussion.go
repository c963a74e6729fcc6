package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/discussion/internal/domain"
	"github.com/labelhub/labelhub/internal/discussion/internal/repository/cache"
	"github.com/labelhub/labelhub/internal/discussion/internal/repository/dao"
)

var (
	ErrActiveDiscussionExists = dao.ErrActiveDiscussionExists
	ErrDuplicateComment       = dao.ErrDuplicateComment
	ErrRecordNotFound         = dao.ErrRecordNotFound
	ErrNotPendingClosure      = cache.ErrNotPendingClosure
)

//go:generate mockgen -source=./discussion.go -package=repomocks -destination=mocks/discussion.mock.go DiscussionRepository
type DiscussionRepository interface {
	Create(ctx context.Context, d domain.Discussion) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Discussion, error)
	Active(ctx context.Context, projectID int64) (domain.Discussion, error)
	Close(ctx context.Context, d domain.Discussion) error
	MarkPendingClosure(ctx context.Context, d domain.Discussion) error
	CancelPendingClosure(ctx context.Context, discussionID int64) error
	PendingClosures(ctx context.Context) ([]domain.Discussion, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Discussion, error)

	CreateComment(ctx context.Context, c domain.Comment) error
	Comment(ctx context.Context, id int64) (domain.Comment, error)
	UpdateComment(ctx context.Context, c domain.Comment) error
	DeleteComment(ctx context.Context, id int64) error
	Comments(ctx context.Context, discussionID int64, offset, limit int) ([]domain.Comment, error)
	CountComments(ctx context.Context, discussionID int64) (int64, error)
}

type discussionRepository struct {
	dao    dao.DiscussionDAO
	cache  cache.DiscussionCache
	logger *elog.Component
}

func NewDiscussionRepository(d dao.DiscussionDAO, c cache.DiscussionCache) DiscussionRepository {
	return &discussionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *discussionRepository) Create(ctx context.Context, d domain.Discussion) (int64, error) {
	return repo.dao.Create(ctx, dao.Discussion{
		ProjectId: d.ProjectID,
		Title:     d.Title,
		CreatedBy: d.CreatedBy,
	})
}

func (repo *discussionRepository) Detail(ctx context.Context, id int64) (domain.Discussion, error) {
	entity, err := repo.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Discussion{}, err
	}
	return repo.toDomain(entity), nil
}

func (repo *discussionRepository) Active(ctx context.Context, projectID int64) (domain.Discussion, error) {
	d, err := repo.cache.GetActive(ctx, projectID)
	if err == nil {
		return d, nil
	}
	entity, err := repo.dao.GetActive(ctx, projectID)
	if err != nil {
		return domain.Discussion{}, err
	}
	d = repo.toDomain(entity)
	if err = repo.cache.SetActive(ctx, d); err != nil {
		repo.logger.Warn("回填活跃讨论缓存失败",
			elog.Int64("projectID", projectID), elog.FieldErr(err))
	}
	return d, nil
}

func (repo *discussionRepository) Close(ctx context.Context, d domain.Discussion) error {
	err := repo.dao.Close(ctx, d.ID)
	if err != nil {
		return err
	}
	// 缓存删除失败就让它自然过期
	if err = repo.cache.DelActive(ctx, d.ProjectID); err != nil {
		repo.logger.Warn("删除活跃讨论缓存失败",
			elog.Int64("projectID", d.ProjectID), elog.FieldErr(err))
	}
	return nil
}

func (repo *discussionRepository) MarkPendingClosure(ctx context.Context, d domain.Discussion) error {
	return repo.cache.MarkPendingClosure(ctx, d)
}

func (repo *discussionRepository) CancelPendingClosure(ctx context.Context, discussionID int64) error {
	return repo.cache.CancelPendingClosure(ctx, discussionID)
}

func (repo *discussionRepository) PendingClosures(ctx context.Context) ([]domain.Discussion, error) {
	return repo.cache.PendingClosures(ctx)
}

func (repo *discussionRepository) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Discussion, error) {
	ds, err := repo.dao.List(ctx, projectID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ds, func(idx int, src dao.Discussion) domain.Discussion {
		return repo.toDomain(src)
	}), nil
}

func (repo *discussionRepository) CreateComment(ctx context.Context, c domain.Comment) error {
	entity := dao.Comment{
		Id:           c.ID,
		DiscussionId: c.DiscussionID,
		Uid:          c.UID,
		Content:      c.Content,
		IsSynced:     c.IsSynced,
	}
	if c.TempID != "" {
		entity.TempId = sql.NullString{String: c.TempID, Valid: true}
	}
	return repo.dao.CreateComment(ctx, entity)
}

func (repo *discussionRepository) Comment(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := repo.dao.GetComment(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return repo.commentToDomain(c), nil
}

func (repo *discussionRepository) UpdateComment(ctx context.Context, c domain.Comment) error {
	return repo.dao.UpdateComment(ctx, c.ID, c.Content)
}

func (repo *discussionRepository) DeleteComment(ctx context.Context, id int64) error {
	return repo.dao.DeleteComment(ctx, id)
}

func (repo *discussionRepository) Comments(ctx context.Context, discussionID int64, offset, limit int) ([]domain.Comment, error) {
	cs, err := repo.dao.Comments(ctx, discussionID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Comment) domain.Comment {
		return repo.commentToDomain(src)
	}), nil
}

func (repo *discussionRepository) commentToDomain(src dao.Comment) domain.Comment {
	return domain.Comment{
		ID:           src.Id,
		DiscussionID: src.DiscussionId,
		UID:          src.Uid,
		Content:      src.Content,
		TempID:       src.TempId.String,
		IsSynced:     src.IsSynced,
		Ctime:        src.Ctime,
		Utime:        src.Utime,
	}
}

func (repo *discussionRepository) CountComments(ctx context.Context, discussionID int64) (int64, error) {
	return repo.dao.CountComments(ctx, discussionID)
}

func (repo *discussionRepository) toDomain(d dao.Discussion) domain.Discussion {
	return domain.Discussion{
		ID:        d.Id,
		ProjectID: d.ProjectId,
		Title:     d.Title,
		Status:    domain.Status(d.Status),
		CreatedBy: d.CreatedBy,
		Ctime:     d.Ctime,
		Utime:     d.Utime,
	}
}
