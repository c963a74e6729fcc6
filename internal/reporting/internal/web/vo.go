package web

import (
	"github.com/labelhub/labelhub/internal/annotation"
)

type StatsReq struct {
	ProjectID int64    `json:"project_id"`
	MemberIDs []int64  `json:"member_ids,omitempty"`
	AttrNames []string `json:"attr_names,omitempty"`
}

type StatsResp struct {
	TotalExamples          int64                   `json:"total_examples"`
	ConflictCount          int64                   `json:"conflict_count"`
	ConflictPercentage     float64                 `json:"conflict_percentage"`
	AttributeDistributions map[string][]ValueShare `json:"attribute_distributions,omitempty"`
}

type AutoAnalyzeReq struct {
	ProjectID int64   `json:"project_id"`
	Threshold float64 `json:"threshold,omitempty"`
}

type AutoAnalyzeResp struct {
	Flagged []FlaggedExample `json:"flagged"`
}

type FlaggedExample struct {
	ExampleID        int64   `json:"example_id"`
	TotalPairs       int     `json:"total_pairs"`
	DisagreeingPairs int     `json:"disagreeing_pairs"`
	Ratio            float64 `json:"ratio"`
	Pairs            []Pair  `json:"pairs"`
}

type Pair struct {
	FirstUID    int64                   `json:"first_uid"`
	SecondUID   int64                   `json:"second_uid"`
	Equal       bool                    `json:"equal"`
	Differences []annotation.Difference `json:"differences"`
}

type CompareMembersReq struct {
	ProjectID int64  `json:"project_id"`
	FirstUID  int64  `json:"first_uid"`
	SecondUID int64  `json:"second_uid"`
	Search    string `json:"search,omitempty"`
}

type CompareMembersResp struct {
	Comparisons []MemberComparison `json:"comparisons"`
}

type MemberComparison struct {
	ExampleID   int64                   `json:"example_id"`
	Text        string                  `json:"text"`
	First       []annotation.Annotation `json:"first"`
	Second      []annotation.Annotation `json:"second"`
	Equal       bool                    `json:"equal"`
	Differences []annotation.Difference `json:"differences"`
}

type LabelDistributionsReq struct {
	ProjectID int64    `json:"project_id"`
	AttrNames []string `json:"attr_names,omitempty"`
	Values    []string `json:"values,omitempty"`
	View      string   `json:"view,omitempty"`
}

type LabelDistributionsResp struct {
	TotalMembers int64               `json:"total_members"`
	Examples     []LabelDistribution `json:"examples"`
}

type LabelDistribution struct {
	ExampleID     int64            `json:"example_id"`
	Labels        map[string]int64 `json:"labels"`
	AgreementRate float64          `json:"agreement_rate"`
	IsAgreement   bool             `json:"is_agreement"`
}

type AttributeDescriptionsReq struct {
	ProjectID int64    `json:"project_id"`
	MemberIDs []int64  `json:"member_ids,omitempty"`
	AttrNames []string `json:"attr_names,omitempty"`
}

type AttributeDescriptionsResp struct {
	Distributions map[string][]ValueShare `json:"distributions"`
}

type ValueShare struct {
	Value      string  `json:"value"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}
