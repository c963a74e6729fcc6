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

//go:build wireinject

package project

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/labelhub/labelhub/internal/project/internal/repository"
	"github.com/labelhub/labelhub/internal/project/internal/repository/dao"
	"github.com/labelhub/labelhub/internal/project/internal/service"
	"github.com/labelhub/labelhub/internal/project/internal/web"
)

func InitModule(db *egorm.Component, voting service.VotingLifecycle) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewProjectRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	projectDAO dao.ProjectDAO
	daoOnce    sync.Once
)

func initDAO(db *egorm.Component) dao.ProjectDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		projectDAO = dao.NewProjectGORMDAO(db)
	})
	return projectDAO
}
