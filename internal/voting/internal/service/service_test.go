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
	"testing"

	"github.com/labelhub/labelhub/internal/discussion"
	discussionmocks "github.com/labelhub/labelhub/internal/discussion/mocks"
	"github.com/labelhub/labelhub/internal/voting/internal/domain"
	"github.com/labelhub/labelhub/internal/voting/internal/repository"
	repomocks "github.com/labelhub/labelhub/internal/voting/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubGuidelines struct {
	text string
}

func (s *stubGuidelines) Guideline(ctx context.Context, projectID int64) (string, error) {
	return s.text, nil
}

type stubMembers struct {
	member bool
}

func (s *stubMembers) IsMember(ctx context.Context, projectID, uid int64) (bool, error) {
	return s.member, nil
}

func TestService_Start(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service)
		want    domain.Session
		wantErr error
	}{
		{
			name: "正常开始并冻结规范",
			mock: func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service) {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().LatestByStatus(gomock.Any(), int64(2), domain.StatusVoting).
					Return(domain.Session{}, repository.ErrRecordNotFound)
				repo.EXPECT().LatestByStatus(gomock.Any(), int64(2), domain.StatusNotStarted).
					Return(domain.Session{ID: 10, ProjectID: 2, Status: domain.StatusNotStarted}, nil)
				repo.EXPECT().Begin(gomock.Any(), int64(10), int64(5), "规范 v1").Return(nil)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).
					Return(domain.Session{
						ID:           10,
						ProjectID:    2,
						DiscussionID: 5,
						Guideline:    "规范 v1",
						Status:       domain.StatusVoting,
					}, nil)
				discussionSvc := discussionmocks.NewMockService(ctrl)
				discussionSvc.EXPECT().Active(gomock.Any(), int64(2)).
					Return(discussion.Discussion{ID: 5, ProjectID: 2}, nil)
				return repo, discussionSvc
			},
			want: domain.Session{
				ID:           10,
				ProjectID:    2,
				DiscussionID: 5,
				Guideline:    "规范 v1",
				Status:       domain.StatusVoting,
			},
		},
		{
			name: "没有活跃讨论",
			mock: func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service) {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().LatestByStatus(gomock.Any(), int64(2), domain.StatusVoting).
					Return(domain.Session{}, repository.ErrRecordNotFound)
				repo.EXPECT().LatestByStatus(gomock.Any(), int64(2), domain.StatusNotStarted).
					Return(domain.Session{ID: 10}, nil)
				discussionSvc := discussionmocks.NewMockService(ctrl)
				discussionSvc.EXPECT().Active(gomock.Any(), int64(2)).
					Return(discussion.Discussion{}, discussion.ErrNoActiveDiscussion)
				return repo, discussionSvc
			},
			wantErr: ErrNoActiveDiscussion,
		},
		{
			name: "已有进行中的投票",
			mock: func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service) {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().LatestByStatus(gomock.Any(), int64(2), domain.StatusVoting).
					Return(domain.Session{ID: 9, Status: domain.StatusVoting}, nil)
				return repo, discussionmocks.NewMockService(ctrl)
			},
			wantErr: ErrVotingInProgress,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, discussionSvc := tc.mock(ctrl)
			svc := NewService(repo, discussionSvc, &stubGuidelines{text: "规范 v1"}, &stubMembers{member: true})
			s, err := svc.Start(context.Background(), 2)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, s)
		})
	}
}

func TestService_Vote(t *testing.T) {
	testCases := []struct {
		name    string
		member  bool
		mock    func(ctrl *gomock.Controller) repository.VotingRepository
		wantErr error
	}{
		{
			name:   "正常投票",
			member: true,
			mock: func(ctrl *gomock.Controller) repository.VotingRepository {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).
					Return(domain.Session{ID: 10, ProjectID: 2, Status: domain.StatusVoting}, nil)
				repo.EXPECT().SaveVote(gomock.Any(), domain.Vote{
					SessionID: 10,
					UID:       11,
					Agree:     true,
				}).Return(int64(1), nil)
				return repo
			},
		},
		{
			name:   "重复投票",
			member: true,
			mock: func(ctrl *gomock.Controller) repository.VotingRepository {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).
					Return(domain.Session{ID: 10, ProjectID: 2, Status: domain.StatusVoting}, nil)
				repo.EXPECT().SaveVote(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrDuplicateVote)
				return repo
			},
			wantErr: ErrDuplicateVote,
		},
		{
			name:   "会话还没开始",
			member: true,
			mock: func(ctrl *gomock.Controller) repository.VotingRepository {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).
					Return(domain.Session{ID: 10, ProjectID: 2, Status: domain.StatusNotStarted}, nil)
				return repo
			},
			wantErr: ErrInvalidState,
		},
		{
			name:   "不是项目成员",
			member: false,
			mock: func(ctrl *gomock.Controller) repository.VotingRepository {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).
					Return(domain.Session{ID: 10, ProjectID: 2, Status: domain.StatusVoting}, nil)
				return repo
			},
			wantErr: ErrNotProjectMember,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), discussionmocks.NewMockService(ctrl),
				&stubGuidelines{}, &stubMembers{member: tc.member})
			err := svc.Vote(context.Background(), 10, 11, true)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_End(t *testing.T) {
	session := domain.Session{
		ID:           10,
		ProjectID:    2,
		DiscussionID: 5,
		Status:       domain.StatusVoting,
	}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service)
		want Result
	}{
		{
			name: "过线通过不开后续轮次",
			mock: func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service) {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).Return(session, nil)
				repo.EXPECT().Tally(gomock.Any(), int64(10)).
					Return(domain.Tally{Agree: 8, Disagree: 2}, nil)
				repo.EXPECT().Complete(gomock.Any(), int64(10)).Return(nil)
				discussionSvc := discussionmocks.NewMockService(ctrl)
				discussionSvc.EXPECT().Close(gomock.Any(), int64(5)).
					Return(discussion.StatusClosed, nil)
				return repo, discussionSvc
			},
			want: Result{
				Tally:    domain.Tally{Agree: 8, Disagree: 2},
				Ratified: true,
			},
		},
		{
			name: "不过线自动开后续讨论和会话",
			mock: func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service) {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).Return(session, nil)
				repo.EXPECT().Tally(gomock.Any(), int64(10)).
					Return(domain.Tally{Agree: 1, Disagree: 2}, nil)
				repo.EXPECT().Complete(gomock.Any(), int64(10)).Return(nil)
				repo.EXPECT().Create(gomock.Any(), domain.Session{
					ProjectID:        2,
					Status:           domain.StatusNotStarted,
					PreviousVotingID: 10,
				}).Return(int64(11), nil)
				discussionSvc := discussionmocks.NewMockService(ctrl)
				discussionSvc.EXPECT().Close(gomock.Any(), int64(5)).
					Return(discussion.StatusClosed, nil)
				discussionSvc.EXPECT().Start(gomock.Any(), discussion.Discussion{
					ProjectID: 2,
					Title:     FollowUpTitle,
					CreatedBy: 99,
				}).Return(int64(6), nil)
				return repo, discussionSvc
			},
			want: Result{
				Tally:                domain.Tally{Agree: 1, Disagree: 2},
				Ratified:             false,
				FollowUpDiscussionID: 6,
				FollowUpSessionID:    11,
			},
		},
		{
			name: "零票按不通过处理",
			mock: func(ctrl *gomock.Controller) (repository.VotingRepository, discussion.Service) {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(10)).Return(session, nil)
				repo.EXPECT().Tally(gomock.Any(), int64(10)).
					Return(domain.Tally{}, nil)
				repo.EXPECT().Complete(gomock.Any(), int64(10)).Return(nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				discussionSvc := discussionmocks.NewMockService(ctrl)
				discussionSvc.EXPECT().Close(gomock.Any(), int64(5)).
					Return(discussion.StatusClosed, nil)
				discussionSvc.EXPECT().Start(gomock.Any(), gomock.Any()).Return(int64(6), nil)
				return repo, discussionSvc
			},
			want: Result{
				Tally:                domain.Tally{},
				Ratified:             false,
				FollowUpDiscussionID: 6,
				FollowUpSessionID:    11,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, discussionSvc := tc.mock(ctrl)
			svc := NewService(repo, discussionSvc, &stubGuidelines{}, &stubMembers{member: true})
			res, err := svc.End(context.Background(), 10, 99)
			assert.NoError(t, err)
			tc.want.Session = session
			tc.want.Session.Status = domain.StatusCompleted
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestService_PrepareSession(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.VotingRepository
		want int64
	}{
		{
			name: "没有历史会话就新建",
			mock: func(ctrl *gomock.Controller) repository.VotingRepository {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Latest(gomock.Any(), int64(2)).
					Return(domain.Session{}, repository.ErrRecordNotFound)
				repo.EXPECT().Create(gomock.Any(), domain.Session{
					ProjectID: 2,
					Status:    domain.StatusNotStarted,
				}).Return(int64(10), nil)
				return repo
			},
			want: 10,
		},
		{
			name: "已有未完结的会话则复用",
			mock: func(ctrl *gomock.Controller) repository.VotingRepository {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Latest(gomock.Any(), int64(2)).
					Return(domain.Session{ID: 9, Status: domain.StatusNotStarted}, nil)
				return repo
			},
			want: 9,
		},
		{
			name: "上一轮已完结则开新的",
			mock: func(ctrl *gomock.Controller) repository.VotingRepository {
				repo := repomocks.NewMockVotingRepository(ctrl)
				repo.EXPECT().Latest(gomock.Any(), int64(2)).
					Return(domain.Session{ID: 9, Status: domain.StatusCompleted}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(10), nil)
				return repo
			},
			want: 10,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), discussionmocks.NewMockService(ctrl),
				&stubGuidelines{}, &stubMembers{member: true})
			id, err := svc.PrepareSession(context.Background(), 2)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
