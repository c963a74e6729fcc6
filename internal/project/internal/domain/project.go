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

type ProjectType string

const (
	TypeDocumentClassification ProjectType = "DocumentClassification"
	TypeSequenceLabeling       ProjectType = "SequenceLabeling"
	TypeSeq2seq                ProjectType = "Seq2seq"
	TypeIntentAndSlot          ProjectType = "IntentDetectionAndSlotFilling"
	TypeImageClassification    ProjectType = "ImageClassification"
	TypeSpeech2text            ProjectType = "Speech2text"
)

func (t ProjectType) Valid() bool {
	switch t {
	case TypeDocumentClassification, TypeSequenceLabeling, TypeSeq2seq,
		TypeIntentAndSlot, TypeImageClassification, TypeSpeech2text:
		return true
	}
	return false
}

type Project struct {
	ID            int64
	Name          string
	Description   string
	Type          ProjectType
	Guideline     string
	CreatedBy     int64
	// Locked 冻结标注，锁定期间进入讨论和投票流程
	Locked        bool
	// Collaborative 为 true 时所有成员共享同一份标注状态
	Collaborative bool
	PerspectiveID int64
	RandomOrder   bool
	Ctime         int64
	Utime         int64
}

type Role string

const (
	RoleAdmin     Role = "project_admin"
	RoleAnnotator Role = "annotator"
	RoleApprover  Role = "annotation_approver"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAnnotator, RoleApprover:
		return true
	}
	return false
}

type Member struct {
	ID        int64
	ProjectID int64
	UID       int64
	Role      Role
	Ctime     int64
}

type Tag struct {
	ID        int64
	ProjectID int64
	Text      string
}
