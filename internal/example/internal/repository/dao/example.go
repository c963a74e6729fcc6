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
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ExampleDAO interface {
	Create(ctx context.Context, e Example) (int64, error)
	BatchCreate(ctx context.Context, es []Example) error
	GetByID(ctx context.Context, id int64) (Example, error)
	GetByUUID(ctx context.Context, uuid string) (Example, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]Example, error)
	Count(ctx context.Context, projectID int64) (int64, error)
	Delete(ctx context.Context, id int64) error

	ConfirmState(ctx context.Context, s ExampleState) error
	RevokeState(ctx context.Context, exampleID, uid int64) error
	RevokeAllStates(ctx context.Context, exampleID int64) error
	States(ctx context.Context, exampleID int64) ([]ExampleState, error)
	ResetStates(ctx context.Context, projectID int64) error
	MultiConfirmedExamples(ctx context.Context, projectID int64, minStates int64) ([]int64, error)
}

type exampleGORMDAO struct {
	db *egorm.Component
}

func NewExampleGORMDAO(db *egorm.Component) ExampleDAO {
	return &exampleGORMDAO{db: db}
}

func (dao *exampleGORMDAO) Create(ctx context.Context, e Example) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&e).Error
	return e.Id, err
}

func (dao *exampleGORMDAO) BatchCreate(ctx context.Context, es []Example) error {
	now := time.Now().UnixMilli()
	for i := range es {
		es[i].Ctime, es[i].Utime = now, now
	}
	return dao.db.WithContext(ctx).CreateInBatches(&es, 100).Error
}

func (dao *exampleGORMDAO) GetByID(ctx context.Context, id int64) (Example, error) {
	var e Example
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	return e, err
}

func (dao *exampleGORMDAO) GetByUUID(ctx context.Context, uuid string) (Example, error) {
	var e Example
	err := dao.db.WithContext(ctx).Where("uuid = ?", uuid).First(&e).Error
	return e, err
}

func (dao *exampleGORMDAO) List(ctx context.Context, projectID int64, offset, limit int) ([]Example, error) {
	var res []Example
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *exampleGORMDAO) Count(ctx context.Context, projectID int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Example{}).
		Where("project_id = ?", projectID).Count(&cnt).Error
	return cnt, err
}

func (dao *exampleGORMDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("example_id = ?", id).Delete(&ExampleState{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Example{}).Error
	})
}

// ConfirmState 重复确认只刷新确认时间
func (dao *exampleGORMDAO) ConfirmState(ctx context.Context, s ExampleState) error {
	now := time.Now().UnixMilli()
	s.ConfirmedAt = now
	s.Ctime, s.Utime = now, now
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "example_id"}, {Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"confirmed_at": now,
			"utime":        now,
		}),
	}).Create(&s).Error
}

func (dao *exampleGORMDAO) RevokeState(ctx context.Context, exampleID, uid int64) error {
	return dao.db.WithContext(ctx).
		Where("example_id = ? AND uid = ?", exampleID, uid).
		Delete(&ExampleState{}).Error
}

func (dao *exampleGORMDAO) RevokeAllStates(ctx context.Context, exampleID int64) error {
	return dao.db.WithContext(ctx).
		Where("example_id = ?", exampleID).
		Delete(&ExampleState{}).Error
}

func (dao *exampleGORMDAO) States(ctx context.Context, exampleID int64) ([]ExampleState, error) {
	var res []ExampleState
	err := dao.db.WithContext(ctx).
		Where("example_id = ?", exampleID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *exampleGORMDAO) ResetStates(ctx context.Context, projectID int64) error {
	return dao.db.WithContext(ctx).
		Where("example_id IN (?)",
			dao.db.Model(&Example{}).Select("id").Where("project_id = ?", projectID)).
		Delete(&ExampleState{}).Error
}

// MultiConfirmedExamples 至少被 minStates 个成员确认过的样本
func (dao *exampleGORMDAO) MultiConfirmedExamples(ctx context.Context, projectID int64, minStates int64) ([]int64, error) {
	var res []int64
	err := dao.db.WithContext(ctx).
		Table("example_states AS s").
		Joins("JOIN examples AS e ON e.id = s.example_id").
		Where("e.project_id = ?", projectID).
		Group("s.example_id").
		Having("COUNT(s.id) >= ?", minStates).
		Pluck("s.example_id", &res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Example{},
		&ExampleState{},
		&Disagreement{},
		&DisagreementUser{},
	)
}

type Example struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Uuid      string `gorm:"type:varchar(32);uniqueIndex:uk_uuid"`
	ProjectId int64  `gorm:"index"`
	Text      string `gorm:"type:text"`
	Meta      Meta   `gorm:"type:json"`
	Filename  string `gorm:"type:varchar(255)"`
	Ctime     int64
	Utime     int64
}

func (Example) TableName() string {
	return "examples"
}

// Meta 直接复用 MySQL 的 json 列
type Meta map[string]any

func (m Meta) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	return string(data), err
}

func (m *Meta) Scan(src any) error {
	var data []byte
	switch val := src.(type) {
	case []byte:
		data = val
	case string:
		data = []byte(val)
	default:
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, m)
}

type ExampleState struct {
	Id          int64 `gorm:"primaryKey,autoIncrement"`
	ExampleId   int64 `gorm:"uniqueIndex:uk_example_uid"`
	Uid         int64 `gorm:"uniqueIndex:uk_example_uid"`
	ConfirmedAt int64
	Ctime       int64
	Utime       int64
}

func (ExampleState) TableName() string {
	return "example_states"
}
