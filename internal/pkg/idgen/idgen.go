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

package idgen

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator 在插入数据库之前就能拿到全局唯一 ID。
// 评论的离线同步依赖这一点：客户端带着 temp_id 过来，
// 服务端立刻返回正式 ID，不用等自增主键。
type Generator interface {
	NextID() int64
}

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

type SnowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("nodeID=%d: %w", nodeID, ErrExceedNode)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &SnowflakeGenerator{node: n}, nil
}

func (g *SnowflakeGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}
