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
	StatusActive Status = "active"
	// StatusPendingClosure 关闭请求已受理但还没落库，等补偿任务收尾
	StatusPendingClosure Status = "pending_closure"
	StatusClosed         Status = "closed"
)

// Discussion 一个项目同一时刻至多一个活跃讨论
type Discussion struct {
	ID        int64
	ProjectID int64
	Title     string
	Status    Status
	CreatedBy int64
	Ctime     int64
	Utime     int64
}

type Comment struct {
	ID           int64
	DiscussionID int64
	UID          int64
	Content      string
	// TempID 离线客户端本地生成的标识，同步时用来去重
	TempID   string
	IsSynced bool
	Ctime    int64
	Utime    int64
}
