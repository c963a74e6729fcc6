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

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusVoting     Status = "voting"
	StatusCompleted  Status = "completed"
)

// RatifyThreshold 赞成比例达到这个值标注规范才算通过
const RatifyThreshold = 0.7

// Session 对标注规范发起的一轮表决
type Session struct {
	ID        int64
	ProjectID int64
	// DiscussionID 开始投票时项目的活跃讨论
	DiscussionID int64
	// Guideline 开始投票那一刻的规范快照
	Guideline string
	Status    Status
	// PreviousVotingID 上一轮没通过时链到上一轮
	PreviousVotingID int64
	StartedAt        int64
	EndedAt          int64
	Ctime            int64
	Utime            int64
}

type Vote struct {
	ID        int64
	SessionID int64
	UID       int64
	Agree     bool
	Ctime     int64
}

// Tally 一轮表决的实时计票
type Tally struct {
	Agree    int64
	Disagree int64
}

func (t Tally) Total() int64 {
	return t.Agree + t.Disagree
}

// AgreeRatio 没人投票按 0 算
func (t Tally) AgreeRatio() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t.Agree) / float64(total)
}

// Ratified 赞成比例过线才算通过，零票永远不通过
func (t Tally) Ratified() bool {
	return t.Total() > 0 && t.AgreeRatio() >= RatifyThreshold
}
