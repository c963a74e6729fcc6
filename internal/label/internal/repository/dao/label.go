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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type LabelDAO interface {
	FindByExampleAndUser(ctx context.Context, exampleID, uid int64) ([]CategoryWithLabel, error)
}

type LabelGORMDAO struct {
	db *egorm.Component
}

func NewLabelGORMDAO(db *egorm.Component) LabelDAO {
	return &LabelGORMDAO{db: db}
}

func (dao *LabelGORMDAO) FindByExampleAndUser(ctx context.Context, exampleID, uid int64) ([]CategoryWithLabel, error) {
	var res []CategoryWithLabel
	err := dao.db.WithContext(ctx).
		Table("categories AS c").
		Select("c.id AS id, c.example_id AS example_id, c.uid AS uid, t.id AS label_id, t.text AS label_text").
		Joins("JOIN category_types AS t ON t.id = c.label_id").
		Where("c.example_id = ? AND c.uid = ?", exampleID, uid).
		Scan(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&CategoryType{}, &Category{})
}

// CategoryType 标签定义表。标注存储本身是外部协作方，
// 这里只做只读查询，所以表结构保持最小。
type CategoryType struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId int64  `gorm:"uniqueIndex:uk_project_text"`
	Text      string `gorm:"type:varchar(255);uniqueIndex:uk_project_text"`
	Ctime     int64
	Utime     int64
}

func (CategoryType) TableName() string {
	return "category_types"
}

// Category 标注员-样本-标签 的分配记录
type Category struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ExampleId int64 `gorm:"uniqueIndex:uk_example_uid_label"`
	Uid       int64 `gorm:"uniqueIndex:uk_example_uid_label"`
	LabelId   int64 `gorm:"uniqueIndex:uk_example_uid_label"`
	Ctime     int64
	Utime     int64
}

func (Category) TableName() string {
	return "categories"
}

type CategoryWithLabel struct {
	Id        int64
	ExampleId int64
	Uid       int64
	LabelId   int64
	LabelText string
}
