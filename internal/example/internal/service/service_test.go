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

	"github.com/labelhub/labelhub/internal/annotation"
	"github.com/labelhub/labelhub/internal/example/internal/domain"
	"github.com/labelhub/labelhub/internal/example/internal/event"
	repomocks "github.com/labelhub/labelhub/internal/example/internal/repository/mocks"
	"github.com/labelhub/labelhub/internal/label"
	labelmocks "github.com/labelhub/labelhub/internal/label/mocks"
	"github.com/labelhub/labelhub/internal/project"
	projectmocks "github.com/labelhub/labelhub/internal/project/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubProducer struct {
	evts []event.ConfirmedEvent
}

func (p *stubProducer) Produce(ctx context.Context, evt event.ConfirmedEvent) error {
	p.evts = append(p.evts, evt)
	return nil
}

func categories(exampleID, uid int64, labels ...string) []label.Category {
	res := make([]label.Category, 0, len(labels))
	for i, l := range labels {
		res = append(res, label.Category{
			ID:        int64(i + 1),
			ExampleID: exampleID,
			UID:       uid,
			Label: label.CategoryLabel{
				ID:   int64(i + 1),
				Text: l,
			},
		})
	}
	return res
}

func TestService_Toggle(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		mock    func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader, *projectmocks.MockService)
		want    bool
		wantErr error
		check   func(t *testing.T, producer *stubProducer)
	}{
		{
			name: "项目锁定时拒绝确认",
			uid:  11,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader, *projectmocks.MockService) {
				repo := repomocks.NewMockExampleRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Example{ID: 1, ProjectID: 2}, nil)
				projSvc := projectmocks.NewMockService(ctrl)
				projSvc.EXPECT().Detail(gomock.Any(), int64(2)).
					Return(project.Project{ID: 2, Locked: true}, nil)
				return repo, repomocks.NewMockDisagreementRepository(ctrl),
					labelmocks.NewMockReader(ctrl), projSvc
			},
			wantErr: ErrProjectLocked,
		},
		{
			name: "图像项目确认同样触发分歧检测",
			uid:  11,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader, *projectmocks.MockService) {
				repo := repomocks.NewMockExampleRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Example{ID: 1, ProjectID: 2}, nil).Times(2)
				projSvc := projectmocks.NewMockService(ctrl)
				projSvc.EXPECT().Detail(gomock.Any(), int64(2)).
					Return(project.Project{ID: 2, Type: "ImageClassification"}, nil)
				repo.EXPECT().States(gomock.Any(), int64(1)).
					Return([]domain.ExampleState{{ExampleID: 1, UID: 22}}, nil)
				repo.EXPECT().Confirm(gomock.Any(), domain.ExampleState{ExampleID: 1, UID: 11}).
					Return(nil)
				repo.EXPECT().States(gomock.Any(), int64(1)).
					Return([]domain.ExampleState{
						{ExampleID: 1, UID: 22},
						{ExampleID: 1, UID: 11},
					}, nil)
				reader := labelmocks.NewMockReader(ctrl)
				reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(22)).
					Return(categories(1, 22, "positive"), nil)
				reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(11)).
					Return(categories(1, 11, "negative"), nil)
				disRepo := repomocks.NewMockDisagreementRepository(ctrl)
				disRepo.EXPECT().GetOrCreate(gomock.Any(), int64(1), int64(2), []int64{22, 11}).
					Return(domain.Disagreement{ID: 7, ExampleID: 1, Users: []int64{22, 11}}, nil)
				return repo, disRepo, reader, projSvc
			},
			want: true,
			check: func(t *testing.T, producer *stubProducer) {
				assert.Len(t, producer.evts, 1)
				assert.True(t, producer.evts[0].Confirmed)
				assert.True(t, producer.evts[0].Flagged)
			},
		},
		{
			name: "协作项目撤销清空所有确认",
			uid:  11,
			mock: func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader, *projectmocks.MockService) {
				repo := repomocks.NewMockExampleRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Example{ID: 1, ProjectID: 2}, nil)
				projSvc := projectmocks.NewMockService(ctrl)
				projSvc.EXPECT().Detail(gomock.Any(), int64(2)).
					Return(project.Project{ID: 2, Collaborative: true}, nil)
				// 协作模式下别人的确认也算这条样本已确认
				repo.EXPECT().States(gomock.Any(), int64(1)).
					Return([]domain.ExampleState{{ExampleID: 1, UID: 22}}, nil)
				repo.EXPECT().RevokeAll(gomock.Any(), int64(1)).Return(nil)
				return repo, repomocks.NewMockDisagreementRepository(ctrl),
					labelmocks.NewMockReader(ctrl), projSvc
			},
			want: false,
			check: func(t *testing.T, producer *stubProducer) {
				assert.Len(t, producer.evts, 1)
				assert.False(t, producer.evts[0].Confirmed)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, disRepo, reader, projSvc := tc.mock(ctrl)
			producer := &stubProducer{}
			svc := NewService(repo, disRepo, annotation.NewExtractor(reader), projSvc, producer)
			got, err := svc.Toggle(context.Background(), 1, tc.uid)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
			if tc.check != nil {
				tc.check(t, producer)
			}
		})
	}
}

func TestService_Detect(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader)
		wantFlagged bool
		wantUsers   []int64
	}{
		{
			name: "单人确认不算分歧",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader) {
				repo := repomocks.NewMockExampleRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Example{ID: 1, ProjectID: 2}, nil)
				repo.EXPECT().States(gomock.Any(), int64(1)).
					Return([]domain.ExampleState{{ExampleID: 1, UID: 11}}, nil)
				return repo, repomocks.NewMockDisagreementRepository(ctrl),
					labelmocks.NewMockReader(ctrl)
			},
		},
		{
			name: "全员一致时关掉历史分歧",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader) {
				repo := repomocks.NewMockExampleRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Example{ID: 1, ProjectID: 2}, nil)
				repo.EXPECT().States(gomock.Any(), int64(1)).
					Return([]domain.ExampleState{
						{ExampleID: 1, UID: 11},
						{ExampleID: 1, UID: 22},
					}, nil)
				reader := labelmocks.NewMockReader(ctrl)
				reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(11)).
					Return(categories(1, 11, "positive"), nil)
				reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(22)).
					Return(categories(1, 22, "positive"), nil)
				disRepo := repomocks.NewMockDisagreementRepository(ctrl)
				disRepo.EXPECT().Resolve(gomock.Any(), int64(1)).Return(nil)
				return repo, disRepo, reader
			},
		},
		{
			name: "分歧记录只挂真正不一致的成员",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockExampleRepository, *repomocks.MockDisagreementRepository, *labelmocks.MockReader) {
				repo := repomocks.NewMockExampleRepository(ctrl)
				repo.EXPECT().Detail(gomock.Any(), int64(1)).
					Return(domain.Example{ID: 1, ProjectID: 2}, nil)
				repo.EXPECT().States(gomock.Any(), int64(1)).
					Return([]domain.ExampleState{
						{ExampleID: 1, UID: 11},
						{ExampleID: 1, UID: 22},
						{ExampleID: 1, UID: 33},
					}, nil)
				reader := labelmocks.NewMockReader(ctrl)
				reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(11)).
					Return(categories(1, 11, "positive"), nil)
				reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(22)).
					Return(categories(1, 22, "positive"), nil)
				reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(33)).
					Return(categories(1, 33, "negative"), nil)
				disRepo := repomocks.NewMockDisagreementRepository(ctrl)
				// 11 和 22 彼此一致，但都跟 33 冲突，三个人都在分歧对里
				disRepo.EXPECT().GetOrCreate(gomock.Any(), int64(1), int64(2), []int64{11, 22, 33}).
					Return(domain.Disagreement{ID: 7, ExampleID: 1, Users: []int64{11, 22, 33}}, nil)
				return repo, disRepo, reader
			},
			wantFlagged: true,
			wantUsers:   []int64{11, 22, 33},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, disRepo, reader := tc.mock(ctrl)
			svc := NewService(repo, disRepo, annotation.NewExtractor(reader),
				projectmocks.NewMockService(ctrl), &stubProducer{})
			d, flagged, err := svc.Detect(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantFlagged, flagged)
			assert.Equal(t, tc.wantUsers, d.Users)
		})
	}
}

func TestService_DetectIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockExampleRepository(ctrl)
	repo.EXPECT().Detail(gomock.Any(), int64(1)).
		Return(domain.Example{ID: 1, ProjectID: 2}, nil).Times(2)
	repo.EXPECT().States(gomock.Any(), int64(1)).
		Return([]domain.ExampleState{
			{ExampleID: 1, UID: 11},
			{ExampleID: 1, UID: 22},
		}, nil).Times(2)
	reader := labelmocks.NewMockReader(ctrl)
	reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(11)).
		Return(categories(1, 11, "positive"), nil).Times(2)
	reader.EXPECT().FindLabels(gomock.Any(), int64(1), int64(22)).
		Return(categories(1, 22, "negative"), nil).Times(2)
	disRepo := repomocks.NewMockDisagreementRepository(ctrl)
	// 重复检测复用同一条分歧记录
	disRepo.EXPECT().GetOrCreate(gomock.Any(), int64(1), int64(2), []int64{11, 22}).
		Return(domain.Disagreement{ID: 7, ExampleID: 1, Users: []int64{11, 22}}, nil).Times(2)

	svc := NewService(repo, disRepo, annotation.NewExtractor(reader),
		projectmocks.NewMockService(ctrl), &stubProducer{})
	first, flagged, err := svc.Detect(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, flagged)
	second, flagged, err := svc.Detect(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, flagged)
	assert.Equal(t, first.ID, second.ID)
}
