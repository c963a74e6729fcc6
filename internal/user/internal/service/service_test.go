// Copyright 2023 labelhub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"testing"

	emailmocks "github.com/labelhub/labelhub/internal/email/mocks"
	"github.com/labelhub/labelhub/internal/user/internal/domain"
	"github.com/labelhub/labelhub/internal/user/internal/repository"
	repomocks "github.com/labelhub/labelhub/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.UserRepository, *emailmocks.MockService)
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "注册成功",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, *emailmocks.MockService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
						// 入库的是 bcrypt 哈希，不是明文
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hello#world123")))
						return 7, nil
					})
				mailSvc := emailmocks.NewMockService(ctrl)
				mailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return repo, mailSvc
			},
			wantUser: domain.User{
				ID:       7,
				Email:    "tom@example.com",
				Username: "tom",
				Nickname: "Tom",
			},
		},
		{
			name: "邮箱或用户名重复",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, *emailmocks.MockService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicateUser)
				return repo, emailmocks.NewMockService(ctrl)
			},
			wantErr: ErrDuplicateUser,
		},
		{
			name: "账号建好但开户邮件发送失败",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, *emailmocks.MockService) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(7), nil)
				mailSvc := emailmocks.NewMockService(ctrl)
				mailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					Return(errors.New("smtp 连不上"))
				return repo, mailSvc
			},
			// 用户照样返回，调用方能拿着资料提示邮件没发出去
			wantUser: domain.User{
				ID:       7,
				Email:    "tom@example.com",
				Username: "tom",
				Nickname: "Tom",
			},
			wantErr: ErrWelcomeMailFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, mailSvc := tc.mock(ctrl)
			svc := NewUserService(repo, mailSvc)
			u, err := svc.Register(context.Background(), domain.User{
				Email:    "tom@example.com",
				Username: "tom",
				Password: "hello#world123",
				Nickname: "Tom",
			})
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil && !errors.Is(tc.wantErr, ErrWelcomeMailFailed) {
				return
			}
			assert.Empty(t, u.Password)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}
