package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labelhub/labelhub/internal/user/internal/domain"
	"github.com/labelhub/labelhub/internal/user/internal/repository/dao"
)

var (
	ErrDuplicateUser  = dao.ErrDuplicateUser
	ErrRecordNotFound = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

func (repo *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(u))
}

func (repo *userRepository) Update(ctx context.Context, u domain.User) error {
	return repo.dao.Update(ctx, repo.toEntity(u))
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := repo.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := repo.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return repo.toDomain(src)
	}), nil
}

func (repo *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Password: u.Password,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}

func (repo *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.Id,
		Email:    u.Email,
		Username: u.Username,
		Password: u.Password,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}
