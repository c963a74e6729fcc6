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
	"fmt"
	"strconv"
	"strings"
)

// Perspective 一组描述标注员的属性模式，可以被多个项目引用
type Perspective struct {
	ID          int64
	Name        string
	Description string
	CreatedBy   int64
	Attributes  []Attribute
	Ctime       int64
}

type AttributeType string

const (
	AttributeTypeText    AttributeType = "text"
	AttributeTypeNumber  AttributeType = "number"
	AttributeTypeBoolean AttributeType = "boolean"
	AttributeTypeList    AttributeType = "list"
)

func (t AttributeType) String() string {
	return string(t)
}

func (t AttributeType) Valid() bool {
	switch t {
	case AttributeTypeText, AttributeTypeNumber, AttributeTypeBoolean, AttributeTypeList:
		return true
	}
	return false
}

// Attribute 一个带类型的属性定义，list 类型必须带候选项
type Attribute struct {
	ID            int64
	PerspectiveID int64
	Name          string
	Type          AttributeType
	Options       []string
}

// ValidateValue 写入时校验取值是否符合属性声明的类型
func (a Attribute) ValidateValue(value string) error {
	switch a.Type {
	case AttributeTypeList:
		for _, opt := range a.Options {
			if value == opt {
				return nil
			}
		}
		return fmt.Errorf("%w: value must be one of: %s", ErrInvalidAttributeValue, strings.Join(a.Options, ", "))
	case AttributeTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%w: value must be a number", ErrInvalidAttributeValue)
		}
	case AttributeTypeBoolean:
		lower := strings.ToLower(value)
		if lower != "true" && lower != "false" {
			return fmt.Errorf("%w: value must be 'true' or 'false'", ErrInvalidAttributeValue)
		}
	}
	return nil
}

// Description 某个成员对某个属性的取值
type Description struct {
	ID            int64
	MemberID      int64
	AttributeID   int64
	AttributeName string
	Value         string
	Ctime         int64
}
