package service

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/discussion/internal/domain"
	"github.com/labelhub/labelhub/internal/discussion/internal/event"
	"github.com/labelhub/labelhub/internal/discussion/internal/repository"
	"github.com/labelhub/labelhub/internal/pkg/idgen"
)

const defaultCommentLimit = 20

var (
	ErrActiveDiscussionExists = repository.ErrActiveDiscussionExists
	ErrNoActiveDiscussion     = errors.New("项目没有活跃讨论")
	ErrDiscussionNotFound     = repository.ErrRecordNotFound
	ErrDiscussionClosed       = errors.New("讨论已经关闭")
	ErrNotProjectMember       = errors.New("不是项目成员")
	ErrNoPendingClosure       = repository.ErrNotPendingClosure
	ErrCommentNotFound        = errors.New("评论不存在")
	ErrNotCommentAuthor       = errors.New("只能操作自己的评论")
)

// MemberChecker 只有项目成员能参与讨论，具体实现由装配层注入
type MemberChecker interface {
	IsMember(ctx context.Context, projectID, uid int64) (bool, error)
}

//go:generate mockgen -source=./service.go -package=discussionmocks -destination=../../mocks/discussion.mock.go Service
type Service interface {
	// Start 开启讨论，一个项目同一时刻至多一个活跃讨论
	Start(ctx context.Context, d domain.Discussion) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Discussion, error)
	Active(ctx context.Context, projectID int64) (domain.Discussion, error)
	// Close 数据库不可用时转入 pending_closure，由补偿任务收尾
	Close(ctx context.Context, discussionID int64) (domain.Status, error)
	// CancelClosure 讨论不在待关闭集合里返回 ErrNoPendingClosure
	CancelClosure(ctx context.Context, discussionID int64) error
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Discussion, error)

	AddComment(ctx context.Context, c domain.Comment) (int64, error)
	// UpdateComment 只有评论作者本人能改
	UpdateComment(ctx context.Context, c domain.Comment) error
	DeleteComment(ctx context.Context, id, uid int64) error
	// SyncComments 离线评论批量同步，按 temp_id 去重，返回本次真正落库的条数
	SyncComments(ctx context.Context, discussionID, uid int64, comments []domain.Comment) (int, error)
	Comments(ctx context.Context, discussionID int64, offset, limit int) ([]domain.Comment, int64, error)

	// ReconcilePendingClosures 把堆积的待关闭讨论真正关掉
	ReconcilePendingClosures(ctx context.Context) (int, error)
}

type service struct {
	repo     repository.DiscussionRepository
	members  MemberChecker
	idgen    idgen.Generator
	producer event.CommentEventProducer
	logger   *elog.Component
}

func NewService(repo repository.DiscussionRepository,
	members MemberChecker,
	gen idgen.Generator,
	producer event.CommentEventProducer) Service {
	return &service{
		repo:     repo,
		members:  members,
		idgen:    gen,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (svc *service) Start(ctx context.Context, d domain.Discussion) (int64, error) {
	if err := svc.requireMember(ctx, d.ProjectID, d.CreatedBy); err != nil {
		return 0, err
	}
	return svc.repo.Create(ctx, d)
}

func (svc *service) Detail(ctx context.Context, id int64) (domain.Discussion, error) {
	return svc.repo.Detail(ctx, id)
}

func (svc *service) Active(ctx context.Context, projectID int64) (domain.Discussion, error) {
	d, err := svc.repo.Active(ctx, projectID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Discussion{}, ErrNoActiveDiscussion
	}
	return d, err
}

func (svc *service) Close(ctx context.Context, discussionID int64) (domain.Status, error) {
	d, err := svc.repo.Detail(ctx, discussionID)
	// 确定不存在的讨论直接报错，只有存储不可用才转入待关闭
	if errors.Is(err, repository.ErrRecordNotFound) {
		return "", ErrDiscussionNotFound
	}
	if err == nil {
		if d.Status == domain.StatusClosed {
			return domain.StatusClosed, ErrDiscussionClosed
		}
		if err = svc.repo.Close(ctx, d); err == nil {
			return domain.StatusClosed, nil
		}
	}
	// 存储不可用，挂起关闭请求，后面补偿任务重放
	d.ID = discussionID
	d.Status = domain.StatusPendingClosure
	if markErr := svc.repo.MarkPendingClosure(ctx, d); markErr != nil {
		return "", markErr
	}
	svc.logger.Warn("讨论关闭落库失败，转入待关闭",
		elog.Int64("discussionID", discussionID), elog.FieldErr(err))
	return domain.StatusPendingClosure, nil
}

func (svc *service) CancelClosure(ctx context.Context, discussionID int64) error {
	return svc.repo.CancelPendingClosure(ctx, discussionID)
}

func (svc *service) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Discussion, error) {
	return svc.repo.List(ctx, projectID, offset, limit)
}

func (svc *service) AddComment(ctx context.Context, c domain.Comment) (int64, error) {
	d, err := svc.repo.Detail(ctx, c.DiscussionID)
	if err != nil {
		return 0, err
	}
	if d.Status != domain.StatusActive {
		return 0, ErrDiscussionClosed
	}
	if err = svc.requireMember(ctx, d.ProjectID, c.UID); err != nil {
		return 0, err
	}
	c.ID = svc.idgen.NextID()
	c.IsSynced = c.TempID != ""
	if err = svc.repo.CreateComment(ctx, c); err != nil {
		return 0, err
	}
	svc.publish(ctx, event.ActionCreate, d.ProjectID, c)
	return c.ID, nil
}

func (svc *service) UpdateComment(ctx context.Context, c domain.Comment) error {
	cur, d, err := svc.commentForAuthor(ctx, c.ID, c.UID)
	if err != nil {
		return err
	}
	cur.Content = c.Content
	if err = svc.repo.UpdateComment(ctx, cur); err != nil {
		return err
	}
	svc.publish(ctx, event.ActionUpdate, d.ProjectID, cur)
	return nil
}

func (svc *service) DeleteComment(ctx context.Context, id, uid int64) error {
	cur, d, err := svc.commentForAuthor(ctx, id, uid)
	if err != nil {
		return err
	}
	if err = svc.repo.DeleteComment(ctx, id); err != nil {
		return err
	}
	svc.publish(ctx, event.ActionDelete, d.ProjectID, cur)
	return nil
}

// commentForAuthor 校验评论存在、作者是 uid、所在讨论还活跃
func (svc *service) commentForAuthor(ctx context.Context, id, uid int64) (domain.Comment, domain.Discussion, error) {
	c, err := svc.repo.Comment(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Comment{}, domain.Discussion{}, ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, domain.Discussion{}, err
	}
	if c.UID != uid {
		return domain.Comment{}, domain.Discussion{}, ErrNotCommentAuthor
	}
	d, err := svc.repo.Detail(ctx, c.DiscussionID)
	if err != nil {
		return domain.Comment{}, domain.Discussion{}, err
	}
	if d.Status != domain.StatusActive {
		return domain.Comment{}, domain.Discussion{}, ErrDiscussionClosed
	}
	return c, d, nil
}

func (svc *service) SyncComments(ctx context.Context, discussionID, uid int64, comments []domain.Comment) (int, error) {
	synced := 0
	for _, c := range comments {
		c.DiscussionID = discussionID
		c.UID = uid
		_, err := svc.AddComment(ctx, c)
		if errors.Is(err, repository.ErrDuplicateComment) {
			continue
		}
		if err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

func (svc *service) Comments(ctx context.Context, discussionID int64, offset, limit int) ([]domain.Comment, int64, error) {
	if limit <= 0 || limit > defaultCommentLimit {
		limit = defaultCommentLimit
	}
	cs, err := svc.repo.Comments(ctx, discussionID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := svc.repo.CountComments(ctx, discussionID)
	return cs, total, err
}

func (svc *service) ReconcilePendingClosures(ctx context.Context) (int, error) {
	pending, err := svc.repo.PendingClosures(ctx)
	if err != nil {
		return 0, err
	}
	closed := 0
	for _, d := range pending {
		detail, err := svc.repo.Detail(ctx, d.ID)
		if errors.Is(err, repository.ErrRecordNotFound) {
			// 讨论没了就不用再关
			_ = svc.repo.CancelPendingClosure(ctx, d.ID)
			continue
		}
		if err != nil {
			return closed, err
		}
		if detail.Status != domain.StatusClosed {
			if err = svc.repo.Close(ctx, detail); err != nil {
				return closed, err
			}
		}
		// 别的实例抢先移除了也算成功
		if err = svc.repo.CancelPendingClosure(ctx, d.ID); err != nil &&
			!errors.Is(err, repository.ErrNotPendingClosure) {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

func (svc *service) requireMember(ctx context.Context, projectID, uid int64) error {
	ok, err := svc.members.IsMember(ctx, projectID, uid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotProjectMember
	}
	return nil
}

func (svc *service) publish(ctx context.Context, action string, projectID int64, c domain.Comment) {
	evt := event.CommentEvent{
		Action:       action,
		DiscussionID: c.DiscussionID,
		ProjectID:    projectID,
		CommentID:    c.ID,
		UID:          c.UID,
		Content:      c.Content,
		Ctime:        time.Now().UnixMilli(),
	}
	if err := svc.producer.Produce(ctx, evt); err != nil {
		svc.logger.Error("发送评论事件失败",
			elog.Int64("discussionID", c.DiscussionID), elog.FieldErr(err))
	}
}
