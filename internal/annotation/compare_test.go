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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		name    string
		first   []Annotation
		second  []Annotation
		wantRes Comparison
	}{
		{
			name:   "两边都为空",
			first:  []Annotation{},
			second: []Annotation{},
			wantRes: Comparison{
				Equal:       true,
				Differences: []Difference{},
			},
		},
		{
			name: "完全一致",
			first: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 1},
			},
			second: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 1},
			},
			wantRes: Comparison{
				Equal:       true,
				Differences: []Difference{},
			},
		},
		{
			name: "第二个标注员多打了一个标签",
			first: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 1},
			},
			second: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 1},
				{Type: TypeCategory, Label: "dog", LabelID: 2},
			},
			wantRes: Comparison{
				Equal: false,
				Differences: []Difference{
					{
						Type:    DiffMissingInFirst,
						Label:   "dog",
						Details: "Label 'dog' only exists in second annotator's set",
					},
				},
			},
		},
		{
			name: "两边各有独有标签",
			first: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 1},
			},
			second: []Annotation{
				{Type: TypeCategory, Label: "dog", LabelID: 2},
			},
			wantRes: Comparison{
				Equal: false,
				Differences: []Difference{
					{
						Type:    DiffMissingInSecond,
						Label:   "cat",
						Details: "Label 'cat' only exists in first annotator's set",
					},
					{
						Type:    DiffMissingInFirst,
						Label:   "dog",
						Details: "Label 'dog' only exists in second annotator's set",
					},
				},
			},
		},
		{
			name: "没有label的记录不参与比较",
			first: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 1},
				{Type: "span"},
			},
			second: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 1},
			},
			wantRes: Comparison{
				Equal:       true,
				Differences: []Difference{},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Compare(tc.first, tc.second)
			assert.Equal(t, tc.wantRes, res)
			// equal 和差异列表必须自洽
			reverse := Compare(tc.second, tc.first)
			assert.Equal(t, res.Equal,
				len(res.Differences) == 0 && len(reverse.Differences) == 0)
		})
	}
}

func TestAllIdentical(t *testing.T) {
	testCases := []struct {
		name    string
		sets    [][]Annotation
		wantRes bool
	}{
		{
			name:    "单个标注员",
			sets:    [][]Annotation{{{Label: "A"}}},
			wantRes: true,
		},
		{
			name: "三个标注员完全一致",
			sets: [][]Annotation{
				{{Label: "A"}},
				{{Label: "A"}},
				{{Label: "A"}},
			},
			wantRes: true,
		},
		{
			name: "有一个标注员不一致",
			sets: [][]Annotation{
				{{Label: "A"}},
				{{Label: "A"}},
				{{Label: "B"}},
			},
			wantRes: false,
		},
		{
			name: "顺序不同不算冲突",
			sets: [][]Annotation{
				{{Label: "A"}, {Label: "B"}},
				{{Label: "B"}, {Label: "A"}},
			},
			wantRes: true,
		},
		{
			name: "重复标签参与完整比较",
			sets: [][]Annotation{
				{{Label: "A"}, {Label: "A"}},
				{{Label: "A"}},
			},
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, AllIdentical(tc.sets))
		})
	}
}

func TestFromMeta(t *testing.T) {
	testCases := []struct {
		name    string
		meta    map[string]any
		wantRes []Annotation
		wantOK  bool
	}{
		{
			name:   "meta里没有annotations",
			meta:   map[string]any{"source": "upload"},
			wantOK: false,
		},
		{
			name: "meta里有annotations",
			meta: map[string]any{
				"annotations": []any{
					map[string]any{"type": "category", "label": "cat", "label_id": float64(3)},
				},
			},
			wantRes: []Annotation{
				{Type: TypeCategory, Label: "cat", LabelID: 3},
			},
			wantOK: true,
		},
		{
			name: "格式不对的条目被跳过",
			meta: map[string]any{
				"annotations": []any{
					"not-a-map",
					map[string]any{"label": "dog"},
				},
			},
			wantRes: []Annotation{
				{Label: "dog"},
			},
			wantOK: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := FromMeta(tc.meta)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantRes, res)
			}
		})
	}
}
