package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/email"
	"github.com/labelhub/labelhub/internal/user/internal/domain"
	"github.com/labelhub/labelhub/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUser      = repository.ErrDuplicateUser
	ErrUserNotFound       = repository.ErrRecordNotFound
	ErrInvalidCredentials = errors.New("邮箱或密码不对")
	// ErrWelcomeMailFailed 账号已经建好，只有开户邮件没发出去
	ErrWelcomeMailFailed = errors.New("开户邮件发送失败")
)

//go:generate mockgen -source=./service.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	// Register 注册成功后发送开户邮件。账号建好但邮件没发出去时
	// 返回用户和 ErrWelcomeMailFailed，调用方自己决定怎么提示
	Register(ctx context.Context, u domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) error
	BatchProfiles(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	emailSvc email.Service
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, emailSvc email.Service) UserService {
	return &userService{
		repo:     repo,
		emailSvc: emailSvc,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = string(hash)
	u.ID, err = svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	if err := svc.sendWelcomeMail(ctx, u); err != nil {
		svc.logger.Error("发送开户邮件失败",
			elog.String("email", u.Email), elog.FieldErr(err))
		return u, fmt.Errorf("%w: %w", ErrWelcomeMailFailed, err)
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) UpdateProfile(ctx context.Context, u domain.User) error {
	return svc.repo.Update(ctx, u)
}

func (svc *userService) BatchProfiles(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := svc.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range us {
		us[i].Password = ""
	}
	return us, nil
}

func (svc *userService) sendWelcomeMail(ctx context.Context, u domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	body := fmt.Sprintf("<p>%s，你好：</p><p>你的标注平台账号已经开通，用户名 %s。</p>", u.Nickname, u.Username)
	return svc.emailSvc.SendMail(ctx, email.Mail{
		From:    "LabelHub",
		To:      u.Email,
		Subject: "账号开通通知",
		Body:    []byte(body),
	})
}
