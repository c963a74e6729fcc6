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

// Package annotation 是分歧检测的核心：
// 把不同存储形态的标注归一化成 Annotation，再做两两比较。
package annotation

import (
	"sort"
	"strings"
)

const TypeCategory = "category"

// Annotation 一个标注员在一条样本上的一条标注记录
type Annotation struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	LabelID int64  `json:"label_id"`
}

// FromMeta 从样本的 meta 里解析内嵌的 annotations 字段。
// 第二个返回值表示 meta 里有没有这个字段。
func FromMeta(meta map[string]any) ([]Annotation, bool) {
	raw, ok := meta["annotations"]
	if !ok {
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	res := make([]Annotation, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var a Annotation
		if v, ok := m["type"].(string); ok {
			a.Type = v
		}
		if v, ok := m["label"].(string); ok {
			a.Label = v
		}
		switch v := m["label_id"].(type) {
		case float64:
			a.LabelID = int64(v)
		case int64:
			a.LabelID = v
		}
		res = append(res, a)
	}
	return res, true
}

// labelSet 没有 label 的记录不参与比较
func labelSet(as []Annotation) map[string]struct{} {
	set := make(map[string]struct{}, len(as))
	for _, a := range as {
		if a.Label == "" {
			continue
		}
		set[a.Label] = struct{}{}
	}
	return set
}

// Canonical 把一组标注归一化成可比较的字符串：label 排序后拼接。
// 用于"完全一致"的判定，保留重复标签。
func Canonical(as []Annotation) string {
	labels := make([]string, 0, len(as))
	for _, a := range as {
		if a.Label == "" {
			continue
		}
		labels = append(labels, a.Label)
	}
	sort.Strings(labels)
	return strings.Join(labels, "\x1f")
}

// AllIdentical 所有标注员的完整标注集是否一致。
// 这是统计口径里的"冲突"判定，比阈值判定更严格。
func AllIdentical(sets [][]Annotation) bool {
	if len(sets) <= 1 {
		return true
	}
	first := Canonical(sets[0])
	for _, s := range sets[1:] {
		if Canonical(s) != first {
			return false
		}
	}
	return true
}
