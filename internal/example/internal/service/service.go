package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/annotation"
	"github.com/labelhub/labelhub/internal/example/internal/domain"
	"github.com/labelhub/labelhub/internal/example/internal/event"
	"github.com/labelhub/labelhub/internal/example/internal/repository"
	"github.com/labelhub/labelhub/internal/project"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrExampleNotFound = repository.ErrRecordNotFound
	ErrProjectLocked   = errors.New("项目已锁定，标注被冻结")
)

//go:generate mockgen -source=./service.go -package=examplemocks -destination=../../mocks/example.mock.go Service
type Service interface {
	Create(ctx context.Context, e domain.Example) (int64, error)
	BatchCreate(ctx context.Context, es []domain.Example) error
	Detail(ctx context.Context, id int64) (domain.Example, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Example, int64, error)
	Delete(ctx context.Context, id int64) error

	// Toggle 确认与撤销确认之间切换，返回切换后的确认状态。
	// 确认之后会同步触发一次分歧检测。
	Toggle(ctx context.Context, exampleID, uid int64) (bool, error)
	States(ctx context.Context, exampleID int64) ([]domain.ExampleState, error)
	ResetConfirmations(ctx context.Context, projectID int64) error

	// Detect 对一条样本重新跑分歧检测，幂等
	Detect(ctx context.Context, exampleID int64) (domain.Disagreement, bool, error)
	ResolveDisagreement(ctx context.Context, exampleID int64) error
	Disagreements(ctx context.Context, projectID int64, unresolvedOnly bool, offset, limit int) ([]domain.Disagreement, error)
	CountDisagreements(ctx context.Context, projectID int64, unresolvedOnly bool) (int64, error)
	// MultiAnnotatedExamples 被至少两个成员确认过的样本，分歧统计的分母
	MultiAnnotatedExamples(ctx context.Context, projectID int64) ([]int64, error)
}

type service struct {
	repo       repository.ExampleRepository
	disRepo    repository.DisagreementRepository
	extractor  *annotation.Extractor
	projectSvc project.Service
	producer   event.ConfirmationEventProducer
	logger     *elog.Component
}

func NewService(repo repository.ExampleRepository,
	disRepo repository.DisagreementRepository,
	extractor *annotation.Extractor,
	projectSvc project.Service,
	producer event.ConfirmationEventProducer) Service {
	return &service{
		repo:       repo,
		disRepo:    disRepo,
		extractor:  extractor,
		projectSvc: projectSvc,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (svc *service) Create(ctx context.Context, e domain.Example) (int64, error) {
	e.UUID = shortuuid.New()
	return svc.repo.Create(ctx, e)
}

func (svc *service) BatchCreate(ctx context.Context, es []domain.Example) error {
	for i := range es {
		es[i].UUID = shortuuid.New()
	}
	return svc.repo.BatchCreate(ctx, es)
}

func (svc *service) Detail(ctx context.Context, id int64) (domain.Example, error) {
	return svc.repo.Detail(ctx, id)
}

func (svc *service) List(ctx context.Context, projectID int64, offset, limit int) ([]domain.Example, int64, error) {
	es, err := svc.repo.List(ctx, projectID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := svc.repo.Count(ctx, projectID)
	return es, total, err
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	return svc.repo.Delete(ctx, id)
}

func (svc *service) Toggle(ctx context.Context, exampleID, uid int64) (bool, error) {
	e, err := svc.repo.Detail(ctx, exampleID)
	if err != nil {
		return false, err
	}
	p, err := svc.projectSvc.Detail(ctx, e.ProjectID)
	if err != nil {
		return false, err
	}
	if p.Locked {
		return false, ErrProjectLocked
	}
	states, err := svc.repo.States(ctx, exampleID)
	if err != nil {
		return false, err
	}
	confirmed := svc.isConfirmed(states, uid, p.Collaborative)
	if confirmed {
		if p.Collaborative {
			err = svc.repo.RevokeAll(ctx, exampleID)
		} else {
			err = svc.repo.Revoke(ctx, exampleID, uid)
		}
		if err != nil {
			return false, err
		}
		svc.publish(ctx, e, uid, false, false)
		return false, nil
	}
	err = svc.repo.Confirm(ctx, domain.ExampleState{
		ExampleID: exampleID,
		UID:       uid,
	})
	if err != nil {
		return false, err
	}
	// 检测失败不影响确认本身，之后可以重跑
	_, flagged, err := svc.Detect(ctx, exampleID)
	if err != nil {
		svc.logger.Warn("确认后分歧检测失败",
			elog.Int64("exampleID", exampleID), elog.FieldErr(err))
	}
	svc.publish(ctx, e, uid, true, flagged)
	return true, nil
}

func (svc *service) States(ctx context.Context, exampleID int64) ([]domain.ExampleState, error) {
	return svc.repo.States(ctx, exampleID)
}

func (svc *service) ResetConfirmations(ctx context.Context, projectID int64) error {
	return svc.repo.ResetStates(ctx, projectID)
}

func (svc *service) Detect(ctx context.Context, exampleID int64) (domain.Disagreement, bool, error) {
	e, err := svc.repo.Detail(ctx, exampleID)
	if err != nil {
		return domain.Disagreement{}, false, err
	}
	states, err := svc.repo.States(ctx, exampleID)
	if err != nil {
		return domain.Disagreement{}, false, err
	}
	// 不足两个标注员谈不上分歧
	if len(states) < 2 {
		return domain.Disagreement{}, false, nil
	}
	uids := slice.Map(states, func(idx int, src domain.ExampleState) int64 {
		return src.UID
	})
	sets := make(map[int64][]annotation.Annotation, len(uids))
	for _, u := range uids {
		set, err := svc.extractor.Extract(ctx, e.Meta, exampleID, u)
		if err != nil {
			return domain.Disagreement{}, false, err
		}
		sets[u] = set
	}
	// 两两比较，只把真正有分歧的人记进去
	disagreeing := make(map[int64]struct{}, len(uids))
	for i := 0; i < len(uids); i++ {
		for j := i + 1; j < len(uids); j++ {
			if !annotation.Compare(sets[uids[i]], sets[uids[j]]).Equal {
				disagreeing[uids[i]] = struct{}{}
				disagreeing[uids[j]] = struct{}{}
			}
		}
	}
	if len(disagreeing) == 0 {
		// 重新确认后一致了，把历史分歧关掉
		err = svc.disRepo.Resolve(ctx, exampleID)
		return domain.Disagreement{}, false, err
	}
	involved := make([]int64, 0, len(disagreeing))
	for _, u := range uids {
		if _, ok := disagreeing[u]; ok {
			involved = append(involved, u)
		}
	}
	d, err := svc.disRepo.GetOrCreate(ctx, exampleID, e.ProjectID, involved)
	if err != nil {
		return domain.Disagreement{}, false, err
	}
	return d, true, nil
}

func (svc *service) ResolveDisagreement(ctx context.Context, exampleID int64) error {
	return svc.disRepo.Resolve(ctx, exampleID)
}

func (svc *service) Disagreements(ctx context.Context,
	projectID int64, unresolvedOnly bool, offset, limit int) ([]domain.Disagreement, error) {
	return svc.disRepo.List(ctx, projectID, unresolvedOnly, offset, limit)
}

func (svc *service) CountDisagreements(ctx context.Context, projectID int64, unresolvedOnly bool) (int64, error) {
	return svc.disRepo.Count(ctx, projectID, unresolvedOnly)
}

func (svc *service) MultiAnnotatedExamples(ctx context.Context, projectID int64) ([]int64, error) {
	return svc.repo.MultiConfirmedExamples(ctx, projectID, 2)
}

func (svc *service) isConfirmed(states []domain.ExampleState, uid int64, collaborative bool) bool {
	if collaborative {
		return len(states) > 0
	}
	for _, s := range states {
		if s.UID == uid {
			return true
		}
	}
	return false
}

func (svc *service) publish(ctx context.Context, e domain.Example, uid int64, confirmed, flagged bool) {
	evt := event.ConfirmedEvent{
		ProjectID: e.ProjectID,
		ExampleID: e.ID,
		UID:       uid,
		Confirmed: confirmed,
		Flagged:   flagged,
		Ctime:     time.Now().UnixMilli(),
	}
	if err := svc.producer.Produce(ctx, evt); err != nil {
		svc.logger.Error("发送确认事件失败",
			elog.Int64("exampleID", e.ID), elog.FieldErr(err))
	}
}
