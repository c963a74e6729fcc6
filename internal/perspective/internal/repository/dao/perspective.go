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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDuplicatePerspective = errors.New("视角名称重复")
	ErrDuplicateDescription = errors.New("成员对该属性已有取值")
	ErrRecordNotFound       = gorm.ErrRecordNotFound
)

const uniqueIndexErrNo uint16 = 1062

type PerspectiveDAO interface {
	Create(ctx context.Context, p Perspective, attrs []PerspectiveAttribute, options map[int][]string) (int64, error)
	GetByID(ctx context.Context, id int64) (Perspective, error)
	List(ctx context.Context, offset, limit int) ([]Perspective, error)
	AttributesByPerspective(ctx context.Context, pid int64) ([]PerspectiveAttribute, error)
	OptionsByAttributes(ctx context.Context, attrIDs []int64) ([]AttributeOption, error)
	GetAttribute(ctx context.Context, attrID int64) (PerspectiveAttribute, error)
	CreateDescription(ctx context.Context, d AttributeDescription) (int64, error)
	DescriptionsByMembers(ctx context.Context, perspectiveID int64, memberIDs []int64, attrNames []string) ([]DescriptionWithAttribute, error)
	DistinctDescriptions(ctx context.Context, perspectiveID int64, attrNames []string) ([]AttrValue, error)
}

type perspectiveGORMDAO struct {
	db *egorm.Component
}

func NewPerspectiveGORMDAO(db *egorm.Component) PerspectiveDAO {
	return &perspectiveGORMDAO{db: db}
}

// Create 视角、属性、候选项在一个事务里落库
func (dao *perspectiveGORMDAO) Create(ctx context.Context,
	p Perspective, attrs []PerspectiveAttribute, options map[int][]string) (int64, error) {
	now := time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.Ctime, p.Utime = now, now
		if err := tx.Create(&p).Error; err != nil {
			return dupAs(err, ErrDuplicatePerspective)
		}
		for i := range attrs {
			attrs[i].PerspectiveId = p.Id
			attrs[i].Ctime, attrs[i].Utime = now, now
			if err := tx.Create(&attrs[i]).Error; err != nil {
				return err
			}
			for _, val := range options[i] {
				opt := AttributeOption{
					AttributeId: attrs[i].Id,
					Value:       val,
					Ctime:       now,
					Utime:       now,
				}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return p.Id, err
}

func (dao *perspectiveGORMDAO) GetByID(ctx context.Context, id int64) (Perspective, error) {
	var p Perspective
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (dao *perspectiveGORMDAO) List(ctx context.Context, offset, limit int) ([]Perspective, error) {
	var res []Perspective
	err := dao.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *perspectiveGORMDAO) AttributesByPerspective(ctx context.Context, pid int64) ([]PerspectiveAttribute, error) {
	var res []PerspectiveAttribute
	err := dao.db.WithContext(ctx).
		Where("perspective_id = ?", pid).
		Order("name ASC").Find(&res).Error
	return res, err
}

func (dao *perspectiveGORMDAO) OptionsByAttributes(ctx context.Context, attrIDs []int64) ([]AttributeOption, error) {
	var res []AttributeOption
	err := dao.db.WithContext(ctx).
		Where("attribute_id IN ?", attrIDs).Find(&res).Error
	return res, err
}

func (dao *perspectiveGORMDAO) GetAttribute(ctx context.Context, attrID int64) (PerspectiveAttribute, error) {
	var res PerspectiveAttribute
	err := dao.db.WithContext(ctx).Where("id = ?", attrID).First(&res).Error
	return res, err
}

func (dao *perspectiveGORMDAO) CreateDescription(ctx context.Context, d AttributeDescription) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime, d.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&d).Error
	if err != nil {
		return 0, dupAs(err, ErrDuplicateDescription)
	}
	return d.Id, nil
}

func (dao *perspectiveGORMDAO) DescriptionsByMembers(ctx context.Context,
	perspectiveID int64, memberIDs []int64, attrNames []string) ([]DescriptionWithAttribute, error) {
	var res []DescriptionWithAttribute
	builder := dao.db.WithContext(ctx).
		Table("attribute_descriptions AS d").
		Select("d.id AS id, d.member_id AS member_id, d.attribute_id AS attribute_id, a.name AS attribute_name, d.value AS value, d.ctime AS ctime").
		Joins("JOIN perspective_attributes AS a ON a.id = d.attribute_id").
		Where("a.perspective_id = ?", perspectiveID)
	if len(memberIDs) > 0 {
		builder = builder.Where("d.member_id IN ?", memberIDs)
	}
	if len(attrNames) > 0 {
		builder = builder.Where("a.name IN ?", attrNames)
	}
	err := builder.Scan(&res).Error
	return res, err
}

func (dao *perspectiveGORMDAO) DistinctDescriptions(ctx context.Context,
	perspectiveID int64, attrNames []string) ([]AttrValue, error) {
	var res []AttrValue
	builder := dao.db.WithContext(ctx).
		Table("attribute_descriptions AS d").
		Select("DISTINCT a.name AS attribute_name, d.value AS value").
		Joins("JOIN perspective_attributes AS a ON a.id = d.attribute_id").
		Where("a.perspective_id = ?", perspectiveID)
	if len(attrNames) > 0 {
		builder = builder.Where("a.name IN ?", attrNames)
	}
	err := builder.Scan(&res).Error
	return res, err
}

func dupAs(err error, target error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return target
	}
	return err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Perspective{},
		&PerspectiveAttribute{},
		&AttributeOption{},
		&AttributeDescription{},
	)
}

type Perspective struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(255);uniqueIndex:uk_name"`
	Description string
	CreatedBy   int64
	Ctime       int64
	Utime       int64
}

func (Perspective) TableName() string {
	return "perspectives"
}

type PerspectiveAttribute struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	PerspectiveId int64  `gorm:"uniqueIndex:uk_perspective_name_type"`
	Name          string `gorm:"type:varchar(255);uniqueIndex:uk_perspective_name_type"`
	Type          string `gorm:"type:varchar(10);uniqueIndex:uk_perspective_name_type"`
	Ctime         int64
	Utime         int64
}

func (PerspectiveAttribute) TableName() string {
	return "perspective_attributes"
}

type AttributeOption struct {
	Id          int64 `gorm:"primaryKey,autoIncrement"`
	AttributeId int64 `gorm:"index"`
	Value       string
	Ctime       int64
	Utime       int64
}

func (AttributeOption) TableName() string {
	return "attribute_options"
}

type AttributeDescription struct {
	Id          int64 `gorm:"primaryKey,autoIncrement"`
	MemberId    int64 `gorm:"uniqueIndex:uk_member_attribute"`
	AttributeId int64 `gorm:"uniqueIndex:uk_member_attribute"`
	Value       string
	Ctime       int64
	Utime       int64
}

func (AttributeDescription) TableName() string {
	return "attribute_descriptions"
}

type DescriptionWithAttribute struct {
	Id            int64
	MemberId      int64
	AttributeId   int64
	AttributeName string
	Value         string
	Ctime         int64
}

type AttrValue struct {
	AttributeName string
	Value         string
}
