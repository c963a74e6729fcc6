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
	"github.com/labelhub/labelhub/internal/discussion/internal/web"
	"github.com/labelhub/labelhub/internal/pkg/idgen"
	"github.com/labelhub/labelhub/internal/test"
	testioc "github.com/labelhub/labelhub/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(123)

type alwaysMember struct{}

func (alwaysMember) IsMember(ctx context.Context, projectID, uid int64) (bool, error) {
	return true, nil
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	gen, err := idgen.NewSnowflakeGenerator(1)
	require.NoError(s.T(), err)
	m, err := discussion.InitModule(s.db, testioc.InitCache(), testioc.InitRedis(), testioc.InitMQ(), gen, alwaysMember{})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `discussions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `discussion_comments`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) post(path string, req any, recorder http.ResponseWriter) {
	t := s.T()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	httpReq, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
}

func (s *HandlerTestSuite) TestStart() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/start", web.StartReq{
		ProjectID: 1,
		Title:     "边界样本怎么标",
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan()
	assert.True(t, res.Data > 0)

	// 同一项目不允许第二个活跃讨论
	recorder2 := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/start", web.StartReq{
		ProjectID: 1,
		Title:     "另一个讨论",
	}, recorder2)
	require.Equal(t, 200, recorder2.Code)
	assert.Equal(t, 505002, recorder2.MustScan().Code)
}

func (s *HandlerTestSuite) TestActive() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/start", web.StartReq{
		ProjectID: 2,
		Title:     "标注规范第三条",
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data

	activeRecorder := test.NewJSONResponseRecorder[web.Discussion]()
	s.post("/discussion/active", web.ProjectIDReq{ProjectID: 2}, activeRecorder)
	require.Equal(t, 200, activeRecorder.Code)
	got := activeRecorder.MustScan().Data
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, uid, got.CreatedBy)

	noneRecorder := test.NewJSONResponseRecorder[web.Discussion]()
	s.post("/discussion/active", web.ProjectIDReq{ProjectID: 999}, noneRecorder)
	require.Equal(t, 200, noneRecorder.Code)
	assert.Equal(t, 505003, noneRecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCloseTwice() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/start", web.StartReq{
		ProjectID: 3,
		Title:     "关闭流程",
	}, recorder)
	id := recorder.MustScan().Data

	closeRecorder := test.NewJSONResponseRecorder[web.CloseResp]()
	s.post("/discussion/close", web.IDReq{ID: id}, closeRecorder)
	require.Equal(t, 200, closeRecorder.Code)
	assert.Equal(t, "closed", closeRecorder.MustScan().Data.Status)

	againRecorder := test.NewJSONResponseRecorder[web.CloseResp]()
	s.post("/discussion/close", web.IDReq{ID: id}, againRecorder)
	require.Equal(t, 200, againRecorder.Code)
	assert.Equal(t, 505005, againRecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCloseNotFound() {
	t := s.T()
	// 关不存在的讨论不能悄悄挂成待关闭
	recorder := test.NewJSONResponseRecorder[web.CloseResp]()
	s.post("/discussion/close", web.IDReq{ID: 987654}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 505004, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCancelClosureWithoutPending() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[any]()
	s.post("/discussion/cancel-closure", web.IDReq{ID: 987654}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 505007, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestUpdateAndDeleteComment() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/start", web.StartReq{
		ProjectID: 5,
		Title:     "评论增改删",
	}, recorder)
	id := recorder.MustScan().Data

	addRecorder := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/comment/add", web.AddCommentReq{
		DiscussionID: id,
		Content:      "先标成正例",
	}, addRecorder)
	commentID := addRecorder.MustScan().Data

	updateRecorder := test.NewJSONResponseRecorder[any]()
	s.post("/discussion/comment/update", web.UpdateCommentReq{
		ID:      commentID,
		Content: "想了想还是负例",
	}, updateRecorder)
	require.Equal(t, 200, updateRecorder.Code)
	assert.Equal(t, 0, updateRecorder.MustScan().Code)

	listRecorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.post("/discussion/comment/list", web.CommentsReq{
		DiscussionID: id,
		Limit:        10,
	}, listRecorder)
	list := listRecorder.MustScan().Data
	require.Len(t, list.Comments, 1)
	assert.Equal(t, "想了想还是负例", list.Comments[0].Content)

	deleteRecorder := test.NewJSONResponseRecorder[any]()
	s.post("/discussion/comment/delete", web.IDReq{ID: commentID}, deleteRecorder)
	require.Equal(t, 200, deleteRecorder.Code)

	afterRecorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.post("/discussion/comment/list", web.CommentsReq{
		DiscussionID: id,
		Limit:        10,
	}, afterRecorder)
	assert.Equal(t, int64(0), afterRecorder.MustScan().Data.Total)

	// 删过的评论再改报评论不存在
	goneRecorder := test.NewJSONResponseRecorder[any]()
	s.post("/discussion/comment/update", web.UpdateCommentReq{
		ID:      commentID,
		Content: "再改一次",
	}, goneRecorder)
	assert.Equal(t, 505008, goneRecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCommentsAndOfflineSync() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/start", web.StartReq{
		ProjectID: 4,
		Title:     "离线评论",
	}, recorder)
	id := recorder.MustScan().Data

	addRecorder := test.NewJSONResponseRecorder[int64]()
	s.post("/discussion/comment/add", web.AddCommentReq{
		DiscussionID: id,
		Content:      "我觉得应该标成正例",
	}, addRecorder)
	require.Equal(t, 200, addRecorder.Code)
	assert.True(t, addRecorder.MustScan().Data > 0)

	syncRecorder := test.NewJSONResponseRecorder[web.SyncCommentsResp]()
	s.post("/discussion/comment/sync", web.SyncCommentsReq{
		DiscussionID: id,
		Comments: []web.OfflineComment{
			{Content: "离线写的第一条", TempID: "tmp-1"},
			{Content: "离线写的第二条", TempID: "tmp-2"},
		},
	}, syncRecorder)
	require.Equal(t, 200, syncRecorder.Code)
	assert.Equal(t, 2, syncRecorder.MustScan().Data.Synced)

	// 重复同步同一批 temp_id 全部去重
	dupRecorder := test.NewJSONResponseRecorder[web.SyncCommentsResp]()
	s.post("/discussion/comment/sync", web.SyncCommentsReq{
		DiscussionID: id,
		Comments: []web.OfflineComment{
			{Content: "离线写的第一条", TempID: "tmp-1"},
		},
	}, dupRecorder)
	require.Equal(t, 200, dupRecorder.Code)
	assert.Equal(t, 0, dupRecorder.MustScan().Data.Synced)

	listRecorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.post("/discussion/comment/list", web.CommentsReq{
		DiscussionID: id,
		Offset:       0,
		Limit:        10,
	}, listRecorder)
	require.Equal(t, 200, listRecorder.Code)
	list := listRecorder.MustScan().Data
	assert.Equal(t, int64(3), list.Total)
	assert.Len(t, list.Comments, 3)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
