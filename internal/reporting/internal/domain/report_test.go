package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossTab(t *testing.T) {
	testCases := []struct {
		name    string
		grouped map[int64]map[string]string
		want    map[string][]ValueShare
	}{
		{
			name:    "没有成员",
			grouped: map[int64]map[string]string{},
			want:    map[string][]ValueShare{},
		},
		{
			name: "三个成员两种取值",
			grouped: map[int64]map[string]string{
				1: {"age_group": "20s"},
				2: {"age_group": "20s"},
				3: {"age_group": "30s"},
			},
			want: map[string][]ValueShare{
				"age_group": {
					{Value: "20s", Count: 2, Percentage: 66.7},
					{Value: "30s", Count: 1, Percentage: 33.3},
				},
			},
		},
		{
			name: "没人描述过的属性不出现",
			grouped: map[int64]map[string]string{
				1: {"gender": "female"},
				2: {},
			},
			want: map[string][]ValueShare{
				"gender": {
					{Value: "female", Count: 1, Percentage: 100},
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CrossTab(tc.grouped))
		})
	}
}

func TestCrossTab_PercentagesSumTo100(t *testing.T) {
	grouped := map[int64]map[string]string{
		1: {"region": "north"},
		2: {"region": "south"},
		3: {"region": "south"},
		4: {"region": "east"},
		5: {"region": "west"},
		6: {"region": "west"},
		7: {"region": "west"},
	}
	var sum float64
	for _, share := range CrossTab(grouped)["region"] {
		sum += share.Percentage
	}
	// 四舍五入会带来零点几的漂移
	assert.InDelta(t, 100, sum, 0.5)
}

func TestAgreementRate(t *testing.T) {
	testCases := []struct {
		name            string
		labels          map[string]int64
		totalAnnotators int64
		want            float64
		wantAgreement   bool
	}{
		{
			name:            "完全一致",
			labels:          map[string]int64{"positive": 3},
			totalAnnotators: 3,
			want:            100,
			wantAgreement:   true,
		},
		{
			name:            "三人两种标签",
			labels:          map[string]int64{"positive": 2, "negative": 1},
			totalAnnotators: 3,
			want:            66.7,
			wantAgreement:   true,
		},
		{
			name:            "对半分不到线",
			labels:          map[string]int64{"positive": 1, "negative": 1},
			totalAnnotators: 2,
			want:            50,
			wantAgreement:   false,
		},
		{
			name:            "没有标注员",
			labels:          map[string]int64{},
			totalAnnotators: 0,
			want:            0,
			wantAgreement:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate := AgreementRate(tc.labels, tc.totalAnnotators)
			assert.Equal(t, tc.want, rate)
			assert.Equal(t, tc.wantAgreement, rate >= AgreementRateBucket)
		})
	}
}

func TestPairDisagreementRatio(t *testing.T) {
	// 分母为零不 panic
	assert.Equal(t, float64(0), PairDisagreementRatio(0, 0))
	// {A} {A} {B}：三对里两对不一致
	assert.InDelta(t, 0.667, PairDisagreementRatio(2, 3), 0.001)
	assert.GreaterOrEqual(t, PairDisagreementRatio(2, 3), DefaultThreshold)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 66.7, Round1(66.66666))
	assert.Equal(t, 33.3, Round1(33.33333))
	assert.Equal(t, 50.0, Round1(50))
}
