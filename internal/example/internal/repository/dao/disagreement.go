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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DisagreementDAO interface {
	// GetOrCreate 以样本为粒度幂等落库，重复检测只补充成员
	GetOrCreate(ctx context.Context, exampleID, projectID int64, uids []int64) (Disagreement, error)
	GetByExample(ctx context.Context, exampleID int64) (Disagreement, error)
	Resolve(ctx context.Context, exampleID int64) error
	List(ctx context.Context, projectID int64, unresolvedOnly bool, offset, limit int) ([]Disagreement, error)
	Count(ctx context.Context, projectID int64, unresolvedOnly bool) (int64, error)
	Users(ctx context.Context, disagreementIDs []int64) ([]DisagreementUser, error)
}

type disagreementGORMDAO struct {
	db *egorm.Component
}

func NewDisagreementGORMDAO(db *egorm.Component) DisagreementDAO {
	return &disagreementGORMDAO{db: db}
}

func (dao *disagreementGORMDAO) GetOrCreate(ctx context.Context,
	exampleID, projectID int64, uids []int64) (Disagreement, error) {
	now := time.Now().UnixMilli()
	var d Disagreement
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(Disagreement{ExampleId: exampleID}).
			Attrs(Disagreement{
				ProjectId: projectID,
				Ctime:     now,
				Utime:     now,
			}).FirstOrCreate(&d).Error
		if err != nil {
			return err
		}
		// 重新打开被解决过的记录
		if d.Resolved {
			err = tx.Model(&Disagreement{}).Where("id = ?", d.Id).
				Updates(map[string]any{
					"resolved": false,
					"utime":    now,
				}).Error
			if err != nil {
				return err
			}
			d.Resolved = false
		}
		for _, uid := range uids {
			err = tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&DisagreementUser{
					DisagreementId: d.Id,
					Uid:            uid,
					Ctime:          now,
					Utime:          now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	return d, err
}

func (dao *disagreementGORMDAO) GetByExample(ctx context.Context, exampleID int64) (Disagreement, error) {
	var d Disagreement
	err := dao.db.WithContext(ctx).Where("example_id = ?", exampleID).First(&d).Error
	return d, err
}

func (dao *disagreementGORMDAO) Resolve(ctx context.Context, exampleID int64) error {
	return dao.db.WithContext(ctx).Model(&Disagreement{}).
		Where("example_id = ? AND resolved = ?", exampleID, false).
		Updates(map[string]any{
			"resolved": true,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (dao *disagreementGORMDAO) List(ctx context.Context,
	projectID int64, unresolvedOnly bool, offset, limit int) ([]Disagreement, error) {
	var res []Disagreement
	builder := dao.db.WithContext(ctx).Where("project_id = ?", projectID)
	if unresolvedOnly {
		builder = builder.Where("resolved = ?", false)
	}
	err := builder.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *disagreementGORMDAO) Count(ctx context.Context, projectID int64, unresolvedOnly bool) (int64, error) {
	var cnt int64
	builder := dao.db.WithContext(ctx).Model(&Disagreement{}).
		Where("project_id = ?", projectID)
	if unresolvedOnly {
		builder = builder.Where("resolved = ?", false)
	}
	err := builder.Count(&cnt).Error
	return cnt, err
}

func (dao *disagreementGORMDAO) Users(ctx context.Context, disagreementIDs []int64) ([]DisagreementUser, error) {
	var res []DisagreementUser
	err := dao.db.WithContext(ctx).
		Where("disagreement_id IN ?", disagreementIDs).Find(&res).Error
	return res, err
}

type Disagreement struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ExampleId int64 `gorm:"uniqueIndex:uk_example"`
	ProjectId int64 `gorm:"index"`
	Resolved  bool
	Ctime     int64
	Utime     int64
}

func (Disagreement) TableName() string {
	return "disagreements"
}

type DisagreementUser struct {
	Id             int64 `gorm:"primaryKey,autoIncrement"`
	DisagreementId int64 `gorm:"uniqueIndex:uk_disagreement_uid"`
	Uid            int64 `gorm:"uniqueIndex:uk_disagreement_uid"`
	Ctime          int64
	Utime          int64
}

func (DisagreementUser) TableName() string {
	return "disagreement_users"
}
