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

package annotation

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/labelhub/labelhub/internal/label"
)

// Extractor 把某个标注员对某条样本的确认归一化成标注集合。
// 优先用样本 meta 里内嵌的 annotations，没有再回落到标注存储。
type Extractor struct {
	reader label.Reader
	logger *elog.Component
}

func NewExtractor(reader label.Reader) *Extractor {
	return &Extractor{
		reader: reader,
		logger: elog.DefaultLogger,
	}
}

// Extract 严格版本：标注存储查询失败会把错误往上抛
func (e *Extractor) Extract(ctx context.Context, meta map[string]any, exampleID, uid int64) ([]Annotation, error) {
	if as, ok := FromMeta(meta); ok {
		return as, nil
	}
	categories, err := e.reader.FindLabels(ctx, exampleID, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(categories, func(idx int, src label.Category) Annotation {
		return Annotation{
			Type:    TypeCategory,
			Label:   src.Label.Text,
			LabelID: src.Label.ID,
		}
	}), nil
}

// ExtractSafe 批量聚合路径用的版本：单条查询失败按"没有标注"处理，
// 不让整个报表失败。
func (e *Extractor) ExtractSafe(ctx context.Context, meta map[string]any, exampleID, uid int64) []Annotation {
	as, err := e.Extract(ctx, meta, exampleID, uid)
	if err != nil {
		e.logger.Warn("提取标注失败，按空集处理",
			elog.Int64("exampleID", exampleID),
			elog.Int64("uid", uid),
			elog.FieldErr(err))
		return []Annotation{}
	}
	return as
}
