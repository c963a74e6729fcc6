package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/project/internal/domain"
	"github.com/labelhub/labelhub/internal/project/internal/repository"
)

var (
	ErrProjectNotFound  = repository.ErrRecordNotFound
	ErrDuplicateMember  = repository.ErrDuplicateMember
	ErrInvalidType      = errors.New("项目类型不合法")
	ErrInvalidRole      = errors.New("角色不合法")
	ErrProjectLocked    = errors.New("项目已锁定")
	ErrProjectNotLocked = errors.New("项目尚未锁定")
	ErrPermissionDenied = errors.New("没有权限")
)

// VotingLifecycle 项目锁定与解锁要联动投票会话，
// 具体实现由装配层注入，避免模块间互相依赖
type VotingLifecycle interface {
	PrepareSession(ctx context.Context, projectID int64) error
	CompleteActive(ctx context.Context, projectID int64) error
}

//go:generate mockgen -source=./service.go -package=projectmocks -destination=../../mocks/project.mock.go Service
type Service interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	Update(ctx context.Context, uid int64, p domain.Project) error
	Detail(ctx context.Context, id int64) (domain.Project, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error)
	// Lock 锁定项目并准备一个待启动的投票会话
	Lock(ctx context.Context, uid, projectID int64) error
	// Unlock 解锁项目并完结所有未结束的投票会话
	Unlock(ctx context.Context, uid, projectID int64) error
	AssignPerspective(ctx context.Context, uid, projectID, perspectiveID int64) error
	AddMember(ctx context.Context, uid int64, m domain.Member) (int64, error)
	RemoveMember(ctx context.Context, uid, projectID, memberUID int64) error
	Members(ctx context.Context, projectID int64) ([]domain.Member, error)
	IsMember(ctx context.Context, projectID, uid int64) (bool, error)
	SaveTag(ctx context.Context, t domain.Tag) (int64, error)
	DeleteTag(ctx context.Context, projectID, tagID int64) error
	Tags(ctx context.Context, projectID int64) ([]domain.Tag, error)
}

type service struct {
	repo   repository.ProjectRepository
	voting VotingLifecycle
	logger *elog.Component
}

func NewService(repo repository.ProjectRepository, voting VotingLifecycle) Service {
	return &service{
		repo:   repo,
		voting: voting,
		logger: elog.DefaultLogger,
	}
}

func (svc *service) Create(ctx context.Context, p domain.Project) (int64, error) {
	if !p.Type.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidType, p.Type)
	}
	return svc.repo.Create(ctx, p)
}

func (svc *service) Update(ctx context.Context, uid int64, p domain.Project) error {
	if err := svc.requireAdmin(ctx, p.ID, uid); err != nil {
		return err
	}
	return svc.repo.Update(ctx, p)
}

func (svc *service) Detail(ctx context.Context, id int64) (domain.Project, error) {
	return svc.repo.Detail(ctx, id)
}

func (svc *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error) {
	return svc.repo.List(ctx, uid, offset, limit)
}

func (svc *service) Lock(ctx context.Context, uid, projectID int64) error {
	if err := svc.requireAdmin(ctx, projectID, uid); err != nil {
		return err
	}
	p, err := svc.repo.Detail(ctx, projectID)
	if err != nil {
		return err
	}
	if p.Locked {
		return ErrProjectLocked
	}
	if err = svc.repo.SetLocked(ctx, projectID, true); err != nil {
		return err
	}
	// 投票会话没建出来不回滚锁定，讨论阶段可以手工补建
	if err = svc.voting.PrepareSession(ctx, projectID); err != nil {
		svc.logger.Error("锁定项目后创建投票会话失败",
			elog.Int64("projectID", projectID), elog.FieldErr(err))
	}
	return nil
}

func (svc *service) Unlock(ctx context.Context, uid, projectID int64) error {
	if err := svc.requireAdmin(ctx, projectID, uid); err != nil {
		return err
	}
	p, err := svc.repo.Detail(ctx, projectID)
	if err != nil {
		return err
	}
	if !p.Locked {
		return ErrProjectNotLocked
	}
	if err = svc.repo.SetLocked(ctx, projectID, false); err != nil {
		return err
	}
	if err = svc.voting.CompleteActive(ctx, projectID); err != nil {
		svc.logger.Error("解锁项目后完结投票会话失败",
			elog.Int64("projectID", projectID), elog.FieldErr(err))
	}
	return nil
}

func (svc *service) AssignPerspective(ctx context.Context, uid, projectID, perspectiveID int64) error {
	if err := svc.requireAdmin(ctx, projectID, uid); err != nil {
		return err
	}
	return svc.repo.SetPerspective(ctx, projectID, perspectiveID)
}

func (svc *service) AddMember(ctx context.Context, uid int64, m domain.Member) (int64, error) {
	if !m.Role.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRole, m.Role)
	}
	if err := svc.requireAdmin(ctx, m.ProjectID, uid); err != nil {
		return 0, err
	}
	return svc.repo.AddMember(ctx, m)
}

func (svc *service) RemoveMember(ctx context.Context, uid, projectID, memberUID int64) error {
	if err := svc.requireAdmin(ctx, projectID, uid); err != nil {
		return err
	}
	return svc.repo.RemoveMember(ctx, projectID, memberUID)
}

func (svc *service) Members(ctx context.Context, projectID int64) ([]domain.Member, error) {
	return svc.repo.Members(ctx, projectID)
}

func (svc *service) IsMember(ctx context.Context, projectID, uid int64) (bool, error) {
	_, err := svc.repo.Member(ctx, projectID, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (svc *service) SaveTag(ctx context.Context, t domain.Tag) (int64, error) {
	return svc.repo.SaveTag(ctx, t)
}

func (svc *service) DeleteTag(ctx context.Context, projectID, tagID int64) error {
	return svc.repo.DeleteTag(ctx, projectID, tagID)
}

func (svc *service) Tags(ctx context.Context, projectID int64) ([]domain.Tag, error) {
	return svc.repo.Tags(ctx, projectID)
}

func (svc *service) requireAdmin(ctx context.Context, projectID, uid int64) error {
	m, err := svc.repo.Member(ctx, projectID, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrPermissionDenied
	}
	if err != nil {
		return err
	}
	if m.Role != domain.RoleAdmin {
		return ErrPermissionDenied
	}
	return nil
}
