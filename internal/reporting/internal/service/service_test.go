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

	"github.com/labelhub/labelhub/internal/annotation"
	"github.com/labelhub/labelhub/internal/example"
	examplemocks "github.com/labelhub/labelhub/internal/example/mocks"
	"github.com/labelhub/labelhub/internal/label"
	labelmocks "github.com/labelhub/labelhub/internal/label/mocks"
	perspectivemocks "github.com/labelhub/labelhub/internal/perspective/mocks"
	"github.com/labelhub/labelhub/internal/project"
	projectmocks "github.com/labelhub/labelhub/internal/project/mocks"
	"github.com/labelhub/labelhub/internal/reporting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func categories(exampleID, uid int64, labels ...string) []label.Category {
	res := make([]label.Category, 0, len(labels))
	for i, text := range labels {
		res = append(res, label.Category{
			ID:        int64(i + 1),
			ExampleID: exampleID,
			UID:       uid,
			Label:     label.CategoryLabel{ID: int64(i + 1), Text: text},
		})
	}
	return res
}

// 三个标注员分别标了 {A}、{A}、{B}：三对里两对不一致，0.667 过 0.4 的线
func TestService_AutoAnalyze_FlagsThresholdBreach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exampleSvc := examplemocks.NewMockService(ctrl)
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{100}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(100)).
		Return(example.Example{ID: 100, ProjectID: 1}, nil)
	exampleSvc.EXPECT().States(gomock.Any(), int64(100)).
		Return([]example.ExampleState{
			{ExampleID: 100, UID: 11},
			{ExampleID: 100, UID: 12},
			{ExampleID: 100, UID: 13},
		}, nil)

	reader := labelmocks.NewMockReader(ctrl)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(11)).Return(categories(100, 11, "A"), nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(12)).Return(categories(100, 12, "A"), nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(13)).Return(categories(100, 13, "B"), nil)

	svc := NewService(exampleSvc,
		projectmocks.NewMockService(ctrl),
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(reader))

	flagged, err := svc.AutoAnalyze(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, int64(100), flagged[0].ExampleID)
	assert.Equal(t, 3, flagged[0].TotalPairs)
	assert.Equal(t, 2, flagged[0].DisagreeingPairs)
	assert.Equal(t, 66.7, flagged[0].Ratio)
}

func TestService_AutoAnalyze_NoMultiAnnotated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exampleSvc := examplemocks.NewMockService(ctrl)
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{}, nil)

	svc := NewService(exampleSvc,
		projectmocks.NewMockService(ctrl),
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(labelmocks.NewMockReader(ctrl)))

	flagged, err := svc.AutoAnalyze(context.Background(), 1, 0.4)
	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestService_AutoAnalyze_InvalidThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(examplemocks.NewMockService(ctrl),
		projectmocks.NewMockService(ctrl),
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(labelmocks.NewMockReader(ctrl)))

	_, err := svc.AutoAnalyze(context.Background(), 1, 1.5)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestService_DisagreementStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exampleSvc := examplemocks.NewMockService(ctrl)
	// 100 有冲突，101 两人标注完全一致
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{100, 101}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(100)).
		Return(example.Example{ID: 100, Meta: map[string]any{
			"annotations": []any{},
		}}, nil)
	exampleSvc.EXPECT().States(gomock.Any(), int64(100)).
		Return([]example.ExampleState{{ExampleID: 100, UID: 11}, {ExampleID: 100, UID: 12}}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(101)).
		Return(example.Example{ID: 101}, nil)
	exampleSvc.EXPECT().States(gomock.Any(), int64(101)).
		Return([]example.ExampleState{{ExampleID: 101, UID: 11}, {ExampleID: 101, UID: 12}}, nil)

	reader := labelmocks.NewMockReader(ctrl)
	// 100 的 meta 内嵌空标注，11 和 12 的集合在回落查询里不一致
	reader.EXPECT().FindLabels(gomock.Any(), int64(101), int64(11)).Return(categories(101, 11, "A"), nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(101), int64(12)).Return(categories(101, 12, "A"), nil)

	projectSvc := projectmocks.NewMockService(ctrl)
	// 没绑定视角，属性分布整块跳过
	projectSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(project.Project{ID: 1}, nil)

	svc := NewService(exampleSvc, projectSvc,
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(reader))

	stats, err := svc.DisagreementStats(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalExamples)
	// 两条样本里 100 的两个集合都是空的，算一致；101 一致。冲突数不超过总数
	assert.LessOrEqual(t, stats.ConflictCount, stats.TotalExamples)
	assert.Equal(t, int64(0), stats.ConflictCount)
	assert.Nil(t, stats.AttributeDistributions)
}

func TestService_DisagreementStats_CountsConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exampleSvc := examplemocks.NewMockService(ctrl)
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{100}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(100)).
		Return(example.Example{ID: 100}, nil)
	exampleSvc.EXPECT().States(gomock.Any(), int64(100)).
		Return([]example.ExampleState{{ExampleID: 100, UID: 11}, {ExampleID: 100, UID: 12}}, nil)

	reader := labelmocks.NewMockReader(ctrl)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(11)).Return(categories(100, 11, "A"), nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(12)).Return(categories(100, 12, "B"), nil)

	projectSvc := projectmocks.NewMockService(ctrl)
	projectSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(project.Project{ID: 1}, nil)

	svc := NewService(exampleSvc, projectSvc,
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(reader))

	stats, err := svc.DisagreementStats(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ConflictCount)
	assert.Equal(t, 100.0, stats.ConflictPercentage)
}

func TestService_DisagreementStats_SafeExtraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exampleSvc := examplemocks.NewMockService(ctrl)
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{100}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(100)).
		Return(example.Example{ID: 100}, nil)
	exampleSvc.EXPECT().States(gomock.Any(), int64(100)).
		Return([]example.ExampleState{{ExampleID: 100, UID: 11}, {ExampleID: 100, UID: 12}}, nil)

	reader := labelmocks.NewMockReader(ctrl)
	// 单个标注员查询失败按空集处理，整份统计不中断
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(11)).
		Return(nil, errors.New("connection refused"))
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(12)).Return(categories(100, 12, "A"), nil)

	projectSvc := projectmocks.NewMockService(ctrl)
	projectSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(project.Project{ID: 1}, nil)

	svc := NewService(exampleSvc, projectSvc,
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(reader))

	stats, err := svc.DisagreementStats(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ConflictCount)
}

func TestService_CompareMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exampleSvc := examplemocks.NewMockService(ctrl)
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{100}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(100)).
		Return(example.Example{ID: 100, Text: "一条样本"}, nil)

	reader := labelmocks.NewMockReader(ctrl)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(11)).Return(categories(100, 11, "cat"), nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(12)).Return(categories(100, 12, "cat", "dog"), nil)

	svc := NewService(exampleSvc,
		projectmocks.NewMockService(ctrl),
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(reader))

	comparisons, err := svc.CompareMembers(context.Background(), 1, 11, 12, "")
	require.NoError(t, err)
	require.Len(t, comparisons, 1)
	cmp := comparisons[0].Comparison
	assert.False(t, cmp.Equal)
	require.Len(t, cmp.Differences, 1)
	assert.Equal(t, annotation.DiffMissingInFirst, cmp.Differences[0].Type)
	assert.Equal(t, "dog", cmp.Differences[0].Label)
}

func TestService_AttributeDescriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectSvc := projectmocks.NewMockService(ctrl)
	projectSvc.EXPECT().Detail(gomock.Any(), int64(1)).
		Return(project.Project{ID: 1, PerspectiveID: 7}, nil)
	projectSvc.EXPECT().Members(gomock.Any(), int64(1)).
		Return([]project.Member{{UID: 11}, {UID: 12}, {UID: 13}}, nil)

	perspectiveSvc := perspectivemocks.NewMockService(ctrl)
	perspectiveSvc.EXPECT().GroupedDescriptions(gomock.Any(), int64(7), []int64{11, 12, 13}, gomock.Nil()).
		Return(map[int64]map[string]string{
			11: {"age_group": "20s"},
			12: {"age_group": "20s"},
			13: {"age_group": "30s"},
		}, nil)

	svc := NewService(examplemocks.NewMockService(ctrl), projectSvc, perspectiveSvc,
		annotation.NewExtractor(labelmocks.NewMockReader(ctrl)))

	distributions, err := svc.AttributeDescriptions(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string][]domain.ValueShare{
		"age_group": {
			{Value: "20s", Count: 2, Percentage: 66.7},
			{Value: "30s", Count: 1, Percentage: 33.3},
		},
	}, distributions)
}

func TestService_AttributeDescriptions_NoPerspective(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectSvc := projectmocks.NewMockService(ctrl)
	projectSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(project.Project{ID: 1}, nil)

	svc := NewService(examplemocks.NewMockService(ctrl), projectSvc,
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(labelmocks.NewMockReader(ctrl)))

	_, err := svc.AttributeDescriptions(context.Background(), 1, nil, nil)
	assert.ErrorIs(t, err, ErrNoPerspective)
}

func TestService_LabelDistributions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectSvc := projectmocks.NewMockService(ctrl)
	projectSvc.EXPECT().Members(gomock.Any(), int64(1)).
		Return([]project.Member{{UID: 11}, {UID: 12}, {UID: 13}}, nil)

	exampleSvc := examplemocks.NewMockService(ctrl)
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{100}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(100)).
		Return(example.Example{ID: 100}, nil)
	exampleSvc.EXPECT().States(gomock.Any(), int64(100)).
		Return([]example.ExampleState{
			{ExampleID: 100, UID: 11},
			{ExampleID: 100, UID: 12},
			{ExampleID: 100, UID: 13},
		}, nil)

	reader := labelmocks.NewMockReader(ctrl)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(11)).Return(categories(100, 11, "positive"), nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(12)).Return(categories(100, 12, "positive"), nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(13)).Return(categories(100, 13, "negative"), nil)

	svc := NewService(exampleSvc, projectSvc,
		perspectivemocks.NewMockService(ctrl),
		annotation.NewExtractor(reader))

	total, dists, err := svc.LabelDistributions(context.Background(), 1, nil, nil, domain.ViewAll)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, dists, 1)
	// 2/3 标了 positive
	assert.Equal(t, 66.7, dists[0].AgreementRate)
	assert.True(t, dists[0].IsAgreement)
	assert.Equal(t, map[string]int64{"positive": 2, "negative": 1}, dists[0].Labels)

	// disagreement 视图把一致的样本过滤掉
	projectSvc.EXPECT().Members(gomock.Any(), int64(1)).
		Return([]project.Member{{UID: 11}, {UID: 12}, {UID: 13}}, nil)
	exampleSvc.EXPECT().MultiAnnotatedExamples(gomock.Any(), int64(1)).Return([]int64{100}, nil)
	exampleSvc.EXPECT().Detail(gomock.Any(), int64(100)).
		Return(example.Example{ID: 100}, nil)
	exampleSvc.EXPECT().States(gomock.Any(), int64(100)).
		Return([]example.ExampleState{
			{ExampleID: 100, UID: 11},
			{ExampleID: 100, UID: 12},
			{ExampleID: 100, UID: 13},
		}, nil)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), gomock.Any()).
		Return(categories(100, 11, "positive"), nil).Times(2)
	reader.EXPECT().FindLabels(gomock.Any(), int64(100), int64(13)).Return(categories(100, 13, "negative"), nil)

	_, dists, err = svc.LabelDistributions(context.Background(), 1, nil, nil, domain.ViewDisagreement)
	require.NoError(t, err)
	assert.Empty(t, dists)
}
