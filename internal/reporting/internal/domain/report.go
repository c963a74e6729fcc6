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

package domain

import (
	"math"
	"sort"

	"github.com/labelhub/labelhub/internal/annotation"
)

// DefaultThreshold 分歧对占比达到这个值就把样本标记出来
const DefaultThreshold = 0.4

// AgreementRateBucket 一致率达到 60% 归入 agreement 桶
const AgreementRateBucket = 60.0

type View string

const (
	ViewAll          View = "all"
	ViewAgreement    View = "agreement"
	ViewDisagreement View = "disagreement"
)

// DisagreementStats 项目级的分歧统计
type DisagreementStats struct {
	TotalExamples int64
	// ConflictCount 标注集不完全一致的样本数，口径比阈值标记更严格
	ConflictCount      int64
	ConflictPercentage float64
	// AttributeDistributions 按成员属性取值的分布，项目没绑定视角时为空
	AttributeDistributions map[string][]ValueShare
}

// FlaggedExample 分歧对占比过线的样本
type FlaggedExample struct {
	ExampleID        int64
	TotalPairs       int
	DisagreeingPairs int
	// Ratio 分歧对占比，百分数
	Ratio float64
	Pairs []PairComparison
}

// PairComparison 两个标注员在同一条样本上的比较结果
type PairComparison struct {
	FirstUID   int64
	SecondUID  int64
	Comparison annotation.Comparison
}

// MemberComparison 指定两个成员在一条样本上的对比
type MemberComparison struct {
	ExampleID  int64
	Text       string
	First      []annotation.Annotation
	Second     []annotation.Annotation
	Comparison annotation.Comparison
}

// ValueShare 某个属性取值在成员中的占比
type ValueShare struct {
	Value      string
	Count      int64
	Percentage float64
}

// LabelDistribution 一条样本上的标签分布和一致率
type LabelDistribution struct {
	ExampleID int64
	// Labels 标签到使用它的标注员数
	Labels map[string]int64
	// AgreementRate 最大单标签人数占标注员总数的比例，百分数
	AgreementRate float64
	IsAgreement   bool
}

// Round1 展示用的百分数统一保留一位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PairDisagreementRatio 分母为零时返回 0，单人样本在上游就被过滤了
func PairDisagreementRatio(disagreeing, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(disagreeing) / float64(total)
}

// AgreementRate 最大单标签人数 / 标注员总数 * 100。
// 没有标注员或没有标签时为 0。
func AgreementRate(labels map[string]int64, totalAnnotators int64) float64 {
	if totalAnnotators == 0 {
		return 0
	}
	var max int64
	for _, cnt := range labels {
		if cnt > max {
			max = cnt
		}
	}
	return Round1(float64(max) / float64(totalAnnotators) * 100)
}

// CrossTab 把成员到属性取值的映射汇总成每个属性的取值分布。
// 没有任何成员描述过的属性不会出现在结果里。
func CrossTab(grouped map[int64]map[string]string) map[string][]ValueShare {
	counts := make(map[string]map[string]int64)
	totals := make(map[string]int64)
	for _, attrs := range grouped {
		for name, value := range attrs {
			if counts[name] == nil {
				counts[name] = make(map[string]int64)
			}
			counts[name][value]++
			totals[name]++
		}
	}
	res := make(map[string][]ValueShare, len(counts))
	for name, values := range counts {
		shares := make([]ValueShare, 0, len(values))
		for value, cnt := range values {
			shares = append(shares, ValueShare{
				Value:      value,
				Count:      cnt,
				Percentage: Round1(float64(cnt) / float64(totals[name]) * 100),
			})
		}
		sort.Slice(shares, func(i, j int) bool {
			if shares[i].Count != shares[j].Count {
				return shares[i].Count > shares[j].Count
			}
			return shares[i].Value < shares[j].Value
		})
		res[name] = shares
	}
	return res
}
