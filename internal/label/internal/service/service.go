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

	"github.com/labelhub/labelhub/internal/label/internal/domain"
	"github.com/labelhub/labelhub/internal/label/internal/repository"
)

// Reader 标注存储的只读能力。
// 报表和分歧检测都只依赖这个接口，不直接触碰标注表。
//
//go:generate mockgen -source=./service.go -package=labelmocks -destination=../../mocks/label.mock.go Reader
type Reader interface {
	// FindLabels 某个标注员在某条样本上的全部标签
	FindLabels(ctx context.Context, exampleID, uid int64) ([]domain.Category, error)
}

type reader struct {
	repo repository.LabelRepository
}

func NewReader(repo repository.LabelRepository) Reader {
	return &reader{repo: repo}
}

func (r *reader) FindLabels(ctx context.Context, exampleID, uid int64) ([]domain.Category, error) {
	return r.repo.FindByExampleAndUser(ctx, exampleID, uid)
}
