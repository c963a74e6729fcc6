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

// Example 一条待标注样本，Meta 里可以内嵌标注快照
type Example struct {
	ID        int64
	UUID      string
	ProjectID int64
	Text      string
	Meta      map[string]any
	Filename  string
	Ctime     int64
	Utime     int64
}

// ExampleState 某个成员对某条样本的确认记录
type ExampleState struct {
	ID          int64
	ExampleID   int64
	UID         int64
	ConfirmedAt int64
}

// Disagreement 一条样本上被检测出的标注分歧
type Disagreement struct {
	ID        int64
	ExampleID int64
	ProjectID int64
	// Users 确认过标注且彼此不一致的成员
	Users    []int64
	Resolved bool
	Ctime    int64
	Utime    int64
}
