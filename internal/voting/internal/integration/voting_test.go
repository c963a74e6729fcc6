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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/labelhub/labelhub/internal/discussion"
	"github.com/labelhub/labelhub/internal/pkg/idgen"
	"github.com/labelhub/labelhub/internal/test"
	testioc "github.com/labelhub/labelhub/internal/test/ioc"
	"github.com/labelhub/labelhub/internal/voting"
	"github.com/labelhub/labelhub/internal/voting/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(456)

type alwaysMember struct{}

func (alwaysMember) IsMember(ctx context.Context, projectID, uid int64) (bool, error) {
	return true, nil
}

type fixedGuideline struct{}

func (fixedGuideline) Guideline(ctx context.Context, projectID int64) (string, error) {
	return "规范 v2", nil
}

type VotingTestSuite struct {
	suite.Suite
	server        *egin.Component
	db            *egorm.Component
	votingSvc     voting.Service
	discussionSvc discussion.Service
}

func (s *VotingTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	gen, err := idgen.NewSnowflakeGenerator(2)
	require.NoError(s.T(), err)
	dm, err := discussion.InitModule(s.db, testioc.InitCache(), testioc.InitRedis(), testioc.InitMQ(), gen, alwaysMember{})
	require.NoError(s.T(), err)
	vm, err := voting.InitModule(s.db, dm, fixedGuideline{}, alwaysMember{})
	require.NoError(s.T(), err)
	s.votingSvc = vm.Svc
	s.discussionSvc = dm.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	vm.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *VotingTestSuite) TearDownTest() {
	for _, table := range []string{"voting_sessions", "votes", "discussions", "discussion_comments"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *VotingTestSuite) post(path string, req any, recorder http.ResponseWriter) {
	t := s.T()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	httpReq, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
}

// prepare 模拟项目锁定后的状态：有活跃讨论，也有待启动的会话
func (s *VotingTestSuite) prepare(projectID int64) {
	t := s.T()
	ctx := context.Background()
	_, err := s.discussionSvc.Start(ctx, discussion.Discussion{
		ProjectID: projectID,
		Title:     "规范修订讨论",
		CreatedBy: uid,
	})
	require.NoError(t, err)
	_, err = s.votingSvc.PrepareSession(ctx, projectID)
	require.NoError(t, err)
}

func (s *VotingTestSuite) TestStartFreezesGuideline() {
	t := s.T()
	s.prepare(10)

	recorder := test.NewJSONResponseRecorder[web.Session]()
	s.post("/voting/start", web.ProjectIDReq{ProjectID: 10}, recorder)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.True(t, got.ID > 0)
	assert.Equal(t, "voting", got.Status)
	assert.Equal(t, "规范 v2", got.Guideline)
	assert.True(t, got.StartedAt > 0)

	// 进行中不允许再开一轮
	again := test.NewJSONResponseRecorder[web.Session]()
	s.post("/voting/start", web.ProjectIDReq{ProjectID: 10}, again)
	require.Equal(t, 200, again.Code)
	assert.Equal(t, 506004, again.MustScan().Code)
}

func (s *VotingTestSuite) TestStartWithoutDiscussion() {
	t := s.T()
	ctx := context.Background()
	_, err := s.votingSvc.PrepareSession(ctx, 11)
	require.NoError(t, err)

	recorder := test.NewJSONResponseRecorder[web.Session]()
	s.post("/voting/start", web.ProjectIDReq{ProjectID: 11}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 506003, recorder.MustScan().Code)
}

func (s *VotingTestSuite) TestVoteAndEnd() {
	t := s.T()
	s.prepare(12)

	startRecorder := test.NewJSONResponseRecorder[web.Session]()
	s.post("/voting/start", web.ProjectIDReq{ProjectID: 12}, startRecorder)
	sessionID := startRecorder.MustScan().Data.ID

	voteRecorder := test.NewJSONResponseRecorder[any]()
	s.post("/voting/vote", web.VoteReq{SessionID: sessionID, Agree: true}, voteRecorder)
	require.Equal(t, 200, voteRecorder.Code)
	assert.Equal(t, 0, voteRecorder.MustScan().Code)

	// 每人只能投一票
	dupRecorder := test.NewJSONResponseRecorder[any]()
	s.post("/voting/vote", web.VoteReq{SessionID: sessionID, Agree: false}, dupRecorder)
	require.Equal(t, 200, dupRecorder.Code)
	assert.Equal(t, 506005, dupRecorder.MustScan().Code)

	statusRecorder := test.NewJSONResponseRecorder[web.StatusResp]()
	s.post("/voting/status", web.IDReq{ID: sessionID}, statusRecorder)
	require.Equal(t, 200, statusRecorder.Code)
	status := statusRecorder.MustScan().Data
	assert.Equal(t, int64(1), status.Agree)
	assert.Equal(t, int64(0), status.Disagree)
	assert.Equal(t, 100.0, status.AgreePercent)

	endRecorder := test.NewJSONResponseRecorder[web.EndResp]()
	s.post("/voting/end", web.IDReq{ID: sessionID}, endRecorder)
	require.Equal(t, 200, endRecorder.Code)
	end := endRecorder.MustScan().Data
	assert.True(t, end.Ratified)
	assert.Zero(t, end.FollowUpSessionID)

	// 表决结束后讨论也跟着关闭
	_, err := s.discussionSvc.Active(context.Background(), 12)
	assert.ErrorIs(t, err, discussion.ErrNoActiveDiscussion)
}

func (s *VotingTestSuite) TestEndWithoutVotesSpawnsFollowUp() {
	t := s.T()
	s.prepare(13)

	startRecorder := test.NewJSONResponseRecorder[web.Session]()
	s.post("/voting/start", web.ProjectIDReq{ProjectID: 13}, startRecorder)
	sessionID := startRecorder.MustScan().Data.ID

	endRecorder := test.NewJSONResponseRecorder[web.EndResp]()
	s.post("/voting/end", web.IDReq{ID: sessionID}, endRecorder)
	require.Equal(t, 200, endRecorder.Code)
	end := endRecorder.MustScan().Data
	assert.False(t, end.Ratified)
	assert.True(t, end.FollowUpDiscussionID > 0)
	assert.True(t, end.FollowUpSessionID > 0)
}

func TestVotingHandler(t *testing.T) {
	suite.Run(t, new(VotingTestSuite))
}
