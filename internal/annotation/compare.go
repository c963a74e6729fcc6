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
	"fmt"
	"sort"
)

const (
	// DiffMissingInFirst 标签只出现在第二个标注员的集合里
	DiffMissingInFirst = "missing_in_first"
	// DiffMissingInSecond 标签只出现在第一个标注员的集合里
	DiffMissingInSecond = "missing_in_second"
)

type Difference struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Details string `json:"details"`
}

type Comparison struct {
	Equal       bool         `json:"equal"`
	Differences []Difference `json:"differences"`
}

// Compare 按标签集合做对称差比较。
// Equal 当且仅当两边的标签集合完全相同。
func Compare(first, second []Annotation) Comparison {
	set1 := labelSet(first)
	set2 := labelSet(second)

	diffs := make([]Difference, 0, len(set1)+len(set2))
	for _, label := range sortedKeys(set1) {
		if _, ok := set2[label]; !ok {
			diffs = append(diffs, Difference{
				Type:    DiffMissingInSecond,
				Label:   label,
				Details: fmt.Sprintf("Label '%s' only exists in first annotator's set", label),
			})
		}
	}
	for _, label := range sortedKeys(set2) {
		if _, ok := set1[label]; !ok {
			diffs = append(diffs, Difference{
				Type:    DiffMissingInFirst,
				Label:   label,
				Details: fmt.Sprintf("Label '%s' only exists in second annotator's set", label),
			})
		}
	}
	return Comparison{
		Equal:       len(diffs) == 0,
		Differences: diffs,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
