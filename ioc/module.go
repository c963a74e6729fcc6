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

package ioc

import (
	"context"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/labelhub/labelhub/internal/discussion"
	"github.com/labelhub/labelhub/internal/pkg/idgen"
	"github.com/labelhub/labelhub/internal/project"
	"github.com/labelhub/labelhub/internal/voting"
	"github.com/redis/go-redis/v9"
)

// votingLifecycleAdapter 打破 project 和 voting 的环：
// project 初始化时先拿到空壳，voting 装配完再把实现塞进来。
type votingLifecycleAdapter struct {
	svc voting.Service
}

func (a *votingLifecycleAdapter) PrepareSession(ctx context.Context, projectID int64) error {
	_, err := a.svc.PrepareSession(ctx, projectID)
	return err
}

func (a *votingLifecycleAdapter) CompleteActive(ctx context.Context, projectID int64) error {
	return a.svc.CompleteActive(ctx, projectID)
}

// projectGateway 把项目服务适配成讨论和投票模块各自要的小接口
type projectGateway struct {
	svc project.Service
}

func (g *projectGateway) IsMember(ctx context.Context, projectID, uid int64) (bool, error) {
	return g.svc.IsMember(ctx, projectID, uid)
}

func (g *projectGateway) Guideline(ctx context.Context, projectID int64) (string, error) {
	p, err := g.svc.Detail(ctx, projectID)
	if err != nil {
		return "", err
	}
	return p.Guideline, nil
}

func initVotingLifecycle() *votingLifecycleAdapter {
	return &votingLifecycleAdapter{}
}

func initProjectModule(db *egorm.Component, lifecycle *votingLifecycleAdapter) (*project.Module, error) {
	return project.InitModule(db, lifecycle)
}

func initDiscussionModule(db *egorm.Component, ec ecache.Cache, cmd redis.Cmdable,
	q mq.MQ, gen idgen.Generator, pm *project.Module) (*discussion.Module, error) {
	return discussion.InitModule(db, ec, cmd, q, gen, &projectGateway{svc: pm.Svc})
}

func initVotingModule(db *egorm.Component, dm *discussion.Module,
	pm *project.Module, lifecycle *votingLifecycleAdapter) (*voting.Module, error) {
	gateway := &projectGateway{svc: pm.Svc}
	m, err := voting.InitModule(db, dm, gateway, gateway)
	if err != nil {
		return nil, err
	}
	lifecycle.svc = m.Svc
	return m, nil
}
