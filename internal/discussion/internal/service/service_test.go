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

	"github.com/labelhub/labelhub/internal/discussion/internal/domain"
	"github.com/labelhub/labelhub/internal/discussion/internal/event"
	"github.com/labelhub/labelhub/internal/discussion/internal/repository"
	repomocks "github.com/labelhub/labelhub/internal/discussion/internal/repository/mocks"
	discussionmocks "github.com/labelhub/labelhub/internal/discussion/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubProducer struct {
	evts []event.CommentEvent
}

func (p *stubProducer) Produce(ctx context.Context, evt event.CommentEvent) error {
	p.evts = append(p.evts, evt)
	return nil
}

type stubIDGen struct {
	next int64
}

func (g *stubIDGen) NextID() int64 {
	g.next++
	return g.next
}

func TestService_Close(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) repository.DiscussionRepository
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "正常关闭",
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, Status: domain.StatusActive}, nil)
				repo.EXPECT().Close(gomock.Any(), domain.Discussion{ID: 1, Status: domain.StatusActive}).
					Return(nil)
				return repo
			},
			wantStatus: domain.StatusClosed,
		},
		{
			name: "重复关闭",
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, Status: domain.StatusClosed}, nil)
				return repo
			},
			wantStatus: domain.StatusClosed,
			wantErr:    ErrDiscussionClosed,
		},
		{
			name: "讨论不存在直接报错",
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{}, repository.ErrRecordNotFound)
				return repo
			},
			wantStatus: "",
			wantErr:    ErrDiscussionNotFound,
		},
		{
			name: "落库失败转入待关闭",
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, Status: domain.StatusActive}, nil)
				repo.EXPECT().Close(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
				repo.EXPECT().MarkPendingClosure(gomock.Any(), gomock.Any()).
					Return(nil)
				return repo
			},
			wantStatus: domain.StatusPendingClosure,
		},
		{
			name: "查详情也失败同样转入待关闭",
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{}, errors.New("connection refused"))
				repo.EXPECT().MarkPendingClosure(gomock.Any(), gomock.Any()).
					Return(nil)
				return repo
			},
			wantStatus: domain.StatusPendingClosure,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			members := discussionmocks.NewMockMemberChecker(ctrl)
			svc := NewService(tc.mock(ctrl), members, &stubIDGen{}, &stubProducer{})
			status, err := svc.Close(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestService_AddComment(t *testing.T) {
	testCases := []struct {
		name    string
		comment domain.Comment
		mock    func(ctrl *gomock.Controller) (repository.DiscussionRepository, MemberChecker)
		wantErr error
	}{
		{
			name:    "在线评论",
			comment: domain.Comment{DiscussionID: 1, UID: 11, Content: "这条样本标 positive 才对"},
			mock: func(ctrl *gomock.Controller) (repository.DiscussionRepository, MemberChecker) {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, ProjectID: 2, Status: domain.StatusActive}, nil)
				repo.EXPECT().CreateComment(gomock.Any(), domain.Comment{
					ID:           1,
					DiscussionID: 1,
					UID:          11,
					Content:      "这条样本标 positive 才对",
				}).Return(nil)
				members := discussionmocks.NewMockMemberChecker(ctrl)
				members.EXPECT().IsMember(gomock.Any(), int64(2), int64(11)).Return(true, nil)
				return repo, members
			},
		},
		{
			name:    "离线评论带 temp_id",
			comment: domain.Comment{DiscussionID: 1, UID: 11, Content: "离线写的", TempID: "t-1"},
			mock: func(ctrl *gomock.Controller) (repository.DiscussionRepository, MemberChecker) {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, ProjectID: 2, Status: domain.StatusActive}, nil)
				repo.EXPECT().CreateComment(gomock.Any(), domain.Comment{
					ID:           1,
					DiscussionID: 1,
					UID:          11,
					Content:      "离线写的",
					TempID:       "t-1",
					IsSynced:     true,
				}).Return(nil)
				members := discussionmocks.NewMockMemberChecker(ctrl)
				members.EXPECT().IsMember(gomock.Any(), int64(2), int64(11)).Return(true, nil)
				return repo, members
			},
		},
		{
			name:    "讨论已关闭",
			comment: domain.Comment{DiscussionID: 1, UID: 11, Content: "晚了"},
			mock: func(ctrl *gomock.Controller) (repository.DiscussionRepository, MemberChecker) {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, ProjectID: 2, Status: domain.StatusClosed}, nil)
				return repo, discussionmocks.NewMockMemberChecker(ctrl)
			},
			wantErr: ErrDiscussionClosed,
		},
		{
			name:    "不是项目成员",
			comment: domain.Comment{DiscussionID: 1, UID: 99, Content: "路人"},
			mock: func(ctrl *gomock.Controller) (repository.DiscussionRepository, MemberChecker) {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, ProjectID: 2, Status: domain.StatusActive}, nil)
				members := discussionmocks.NewMockMemberChecker(ctrl)
				members.EXPECT().IsMember(gomock.Any(), int64(2), int64(99)).Return(false, nil)
				return repo, members
			},
			wantErr: ErrNotProjectMember,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, members := tc.mock(ctrl)
			producer := &stubProducer{}
			svc := NewService(repo, members, &stubIDGen{}, producer)
			id, err := svc.AddComment(context.Background(), tc.comment)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, int64(1), id)
				assert.Len(t, producer.evts, 1)
				assert.Equal(t, event.ActionCreate, producer.evts[0].Action)
				assert.Equal(t, tc.comment.Content, producer.evts[0].Content)
			}
		})
	}
}

func TestService_CancelClosure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockDiscussionRepository(ctrl)
	// 没有待关闭标记时取消要报错，不能装作成功
	repo.EXPECT().CancelPendingClosure(gomock.Any(), int64(1)).
		Return(repository.ErrNotPendingClosure)

	svc := NewService(repo, discussionmocks.NewMockMemberChecker(ctrl), &stubIDGen{}, &stubProducer{})
	err := svc.CancelClosure(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoPendingClosure)
}

func TestService_UpdateComment(t *testing.T) {
	testCases := []struct {
		name    string
		comment domain.Comment
		mock    func(ctrl *gomock.Controller) repository.DiscussionRepository
		wantErr error
	}{
		{
			name:    "作者本人修改",
			comment: domain.Comment{ID: 10, UID: 11, Content: "改成 negative"},
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Comment(gomock.Any(), int64(10)).
					Return(domain.Comment{ID: 10, DiscussionID: 1, UID: 11, Content: "旧内容"}, nil)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, ProjectID: 2, Status: domain.StatusActive}, nil)
				repo.EXPECT().UpdateComment(gomock.Any(), domain.Comment{
					ID: 10, DiscussionID: 1, UID: 11, Content: "改成 negative",
				}).Return(nil)
				return repo
			},
		},
		{
			name:    "评论不存在",
			comment: domain.Comment{ID: 10, UID: 11, Content: "改"},
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Comment(gomock.Any(), int64(10)).
					Return(domain.Comment{}, repository.ErrRecordNotFound)
				return repo
			},
			wantErr: ErrCommentNotFound,
		},
		{
			name:    "改别人的评论",
			comment: domain.Comment{ID: 10, UID: 99, Content: "改"},
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Comment(gomock.Any(), int64(10)).
					Return(domain.Comment{ID: 10, DiscussionID: 1, UID: 11}, nil)
				return repo
			},
			wantErr: ErrNotCommentAuthor,
		},
		{
			name:    "讨论已关闭",
			comment: domain.Comment{ID: 10, UID: 11, Content: "改"},
			mock: func(ctrl *gomock.Controller) repository.DiscussionRepository {
				repo := repomocks.NewMockDiscussionRepository(ctrl)
				repo.EXPECT().Comment(gomock.Any(), int64(10)).
					Return(domain.Comment{ID: 10, DiscussionID: 1, UID: 11}, nil)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Discussion{ID: 1, Status: domain.StatusClosed}, nil)
				return repo
			},
			wantErr: ErrDiscussionClosed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			producer := &stubProducer{}
			svc := NewService(tc.mock(ctrl), discussionmocks.NewMockMemberChecker(ctrl),
				&stubIDGen{}, producer)
			err := svc.UpdateComment(context.Background(), tc.comment)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Len(t, producer.evts, 1)
				assert.Equal(t, event.ActionUpdate, producer.evts[0].Action)
				assert.Equal(t, tc.comment.Content, producer.evts[0].Content)
			}
		})
	}
}

func TestService_DeleteComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockDiscussionRepository(ctrl)
	repo.EXPECT().Comment(gomock.Any(), int64(10)).
		Return(domain.Comment{ID: 10, DiscussionID: 1, UID: 11, Content: "要删的"}, nil)
	repo.EXPECT().Detail(gomock.Any(), int64(1)).
		Return(domain.Discussion{ID: 1, ProjectID: 2, Status: domain.StatusActive}, nil)
	repo.EXPECT().DeleteComment(gomock.Any(), int64(10)).Return(nil)

	producer := &stubProducer{}
	svc := NewService(repo, discussionmocks.NewMockMemberChecker(ctrl), &stubIDGen{}, producer)
	err := svc.DeleteComment(context.Background(), 10, 11)
	assert.NoError(t, err)
	assert.Len(t, producer.evts, 1)
	assert.Equal(t, event.ActionDelete, producer.evts[0].Action)
	assert.Equal(t, int64(10), producer.evts[0].CommentID)
}

func TestService_SyncComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockDiscussionRepository(ctrl)
	repo.EXPECT().Detail(gomock.Any(), int64(1)).
		Return(domain.Discussion{ID: 1, ProjectID: 2, Status: domain.StatusActive}, nil).
		Times(3)
	// 第二条的 temp_id 已经同步过，撞唯一索引
	gomock.InOrder(
		repo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateComment),
		repo.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(nil),
	)
	members := discussionmocks.NewMockMemberChecker(ctrl)
	members.EXPECT().IsMember(gomock.Any(), int64(2), int64(11)).Return(true, nil).Times(3)

	svc := NewService(repo, members, &stubIDGen{}, &stubProducer{})
	synced, err := svc.SyncComments(context.Background(), 1, 11, []domain.Comment{
		{Content: "第一条", TempID: "t-1"},
		{Content: "重复的", TempID: "t-2"},
		{Content: "第三条", TempID: "t-3"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, synced)
}

func TestService_ReconcilePendingClosures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockDiscussionRepository(ctrl)
	repo.EXPECT().PendingClosures(gomock.Any()).Return([]domain.Discussion{
		{ID: 1}, {ID: 2}, {ID: 3},
	}, nil)
	// 1 还活跃，2 已经被别处关掉，3 已经不存在
	repo.EXPECT().Detail(gomock.Any(), int64(1)).
		Return(domain.Discussion{ID: 1, Status: domain.StatusActive}, nil)
	repo.EXPECT().Close(gomock.Any(), domain.Discussion{ID: 1, Status: domain.StatusActive}).Return(nil)
	repo.EXPECT().CancelPendingClosure(gomock.Any(), int64(1)).Return(nil)
	repo.EXPECT().Detail(gomock.Any(), int64(2)).
		Return(domain.Discussion{ID: 2, Status: domain.StatusClosed}, nil)
	// 别的实例抢先移除了标记，不影响计数
	repo.EXPECT().CancelPendingClosure(gomock.Any(), int64(2)).
		Return(repository.ErrNotPendingClosure)
	repo.EXPECT().Detail(gomock.Any(), int64(3)).
		Return(domain.Discussion{}, repository.ErrRecordNotFound)
	repo.EXPECT().CancelPendingClosure(gomock.Any(), int64(3)).Return(nil)

	svc := NewService(repo, discussionmocks.NewMockMemberChecker(ctrl), &stubIDGen{}, &stubProducer{})
	closed, err := svc.ReconcilePendingClosures(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, closed)
}
