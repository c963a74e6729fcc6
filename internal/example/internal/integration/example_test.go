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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ego-component/egorm"
	"github.com/labelhub/labelhub/internal/annotation"
	"github.com/labelhub/labelhub/internal/example/internal/domain"
	"github.com/labelhub/labelhub/internal/example/internal/event"
	"github.com/labelhub/labelhub/internal/example/internal/repository"
	"github.com/labelhub/labelhub/internal/example/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/example/internal/service"
	"github.com/labelhub/labelhub/internal/label"
	"github.com/labelhub/labelhub/internal/project"
	projectmocks "github.com/labelhub/labelhub/internal/project/mocks"
	testioc "github.com/labelhub/labelhub/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const projectID = int64(42)

const (
	positiveLabelID = int64(1)
	negativeLabelID = int64(2)
)

type noopProducer struct{}

func (noopProducer) Produce(ctx context.Context, evt event.ConfirmedEvent) error {
	return nil
}

type ServiceTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc service.Service
}

func (s *ServiceTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	lm, err := label.InitModule(s.db)
	require.NoError(s.T(), err)

	ctrl := gomock.NewController(s.T())
	projSvc := projectmocks.NewMockService(ctrl)
	// 非文本项目，确认后照样要跑分歧检测
	projSvc.EXPECT().Detail(gomock.Any(), gomock.Any()).
		Return(project.Project{ID: projectID, Type: "ImageClassification"}, nil).
		AnyTimes()

	s.svc = service.NewService(
		repository.NewExampleRepository(dao.NewExampleGORMDAO(s.db)),
		repository.NewDisagreementRepository(dao.NewDisagreementGORMDAO(s.db)),
		annotation.NewExtractor(lm.Reader),
		projSvc, noopProducer{})
}

func (s *ServiceTestSuite) TearDownTest() {
	for _, table := range []string{
		"examples", "example_states",
		"disagreements", "disagreement_users",
		"categories", "category_types",
	} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *ServiceTestSuite) seedLabelTypes() {
	t := s.T()
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `category_types` (id, project_id, text, ctime, utime) VALUES (?, ?, ?, ?, ?), (?, ?, ?, ?, ?)",
		positiveLabelID, projectID, "positive", now, now,
		negativeLabelID, projectID, "negative", now, now).Error
	require.NoError(t, err)
}

func (s *ServiceTestSuite) annotate(exampleID, uid, labelID int64) {
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `categories` (example_id, uid, label_id, ctime, utime) VALUES (?, ?, ?, ?, ?)",
		exampleID, uid, labelID, now, now).Error
	require.NoError(s.T(), err)
}

func (s *ServiceTestSuite) TestConfirmDetectsAndReusesDisagreement() {
	t := s.T()
	ctx := context.Background()
	s.seedLabelTypes()
	id, err := s.svc.Create(ctx, domain.Example{
		ProjectID: projectID,
		Text:      "一张模糊的猫图",
	})
	require.NoError(t, err)
	s.annotate(id, 11, positiveLabelID)
	s.annotate(id, 22, negativeLabelID)

	// 第一个人确认时只有一份标注，不构成分歧
	confirmed, err := s.svc.Toggle(ctx, id, 11)
	require.NoError(t, err)
	assert.True(t, confirmed)
	cnt, err := s.svc.CountDisagreements(ctx, projectID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)

	// 第二个人确认触发检测
	confirmed, err = s.svc.Toggle(ctx, id, 22)
	require.NoError(t, err)
	assert.True(t, confirmed)

	first, flagged, err := s.svc.Detect(ctx, id)
	require.NoError(t, err)
	assert.True(t, flagged)
	assert.ElementsMatch(t, []int64{11, 22}, first.Users)

	// 重复检测复用同一条记录，不会越积越多
	second, flagged, err := s.svc.Detect(ctx, id)
	require.NoError(t, err)
	assert.True(t, flagged)
	assert.Equal(t, first.ID, second.ID)
	cnt, err = s.svc.CountDisagreements(ctx, projectID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	// 改成一致后再检测，分歧被解决
	err = s.db.Exec("UPDATE `categories` SET label_id = ? WHERE example_id = ? AND uid = ?",
		positiveLabelID, id, int64(22)).Error
	require.NoError(t, err)
	_, flagged, err = s.svc.Detect(ctx, id)
	require.NoError(t, err)
	assert.False(t, flagged)
	cnt, err = s.svc.CountDisagreements(ctx, projectID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)

	// 解决过的记录在新分歧出现时被重新打开
	err = s.db.Exec("UPDATE `categories` SET label_id = ? WHERE example_id = ? AND uid = ?",
		negativeLabelID, id, int64(22)).Error
	require.NoError(t, err)
	reopened, flagged, err := s.svc.Detect(ctx, id)
	require.NoError(t, err)
	assert.True(t, flagged)
	assert.Equal(t, first.ID, reopened.ID)
	assert.False(t, reopened.Resolved)
}

func TestExampleService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
