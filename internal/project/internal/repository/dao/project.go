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
	ErrDuplicateMember = errors.New("用户已经是项目成员")
	ErrRecordNotFound  = gorm.ErrRecordNotFound
)

const uniqueIndexErrNo uint16 = 1062

type ProjectDAO interface {
	Create(ctx context.Context, p Project, adminUID int64) (int64, error)
	Update(ctx context.Context, p Project) error
	GetByID(ctx context.Context, id int64) (Project, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]Project, error)
	SetLocked(ctx context.Context, id int64, locked bool) error
	SetPerspective(ctx context.Context, id int64, perspectiveID int64) error
	AddMember(ctx context.Context, m ProjectMember) (int64, error)
	RemoveMember(ctx context.Context, projectID, uid int64) error
	Members(ctx context.Context, projectID int64) ([]ProjectMember, error)
	Member(ctx context.Context, projectID, uid int64) (ProjectMember, error)
	SaveTag(ctx context.Context, t ProjectTag) (int64, error)
	DeleteTag(ctx context.Context, projectID, tagID int64) error
	Tags(ctx context.Context, projectID int64) ([]ProjectTag, error)
}

type projectGORMDAO struct {
	db *egorm.Component
}

func NewProjectGORMDAO(db *egorm.Component) ProjectDAO {
	return &projectGORMDAO{db: db}
}

// Create 创建项目并把创建者写成管理员，两步同一事务
func (dao *projectGORMDAO) Create(ctx context.Context, p Project, adminUID int64) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return tx.Create(&ProjectMember{
			ProjectId: p.Id,
			Uid:       adminUID,
			Role:      "project_admin",
			Ctime:     now,
			Utime:     now,
		}).Error
	})
	return p.Id, err
}

func (dao *projectGORMDAO) Update(ctx context.Context, p Project) error {
	return dao.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":          p.Name,
			"description":   p.Description,
			"guideline":     p.Guideline,
			"collaborative": p.Collaborative,
			"random_order":  p.RandomOrder,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (dao *projectGORMDAO) GetByID(ctx context.Context, id int64) (Project, error) {
	var p Project
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (dao *projectGORMDAO) List(ctx context.Context, uid int64, offset, limit int) ([]Project, error) {
	var res []Project
	err := dao.db.WithContext(ctx).
		Table("projects AS p").
		Joins("JOIN project_members AS m ON m.project_id = p.id").
		Where("m.uid = ?", uid).
		Order("p.ctime DESC").
		Offset(offset).Limit(limit).
		Select("p.*").
		Find(&res).Error
	return res, err
}

func (dao *projectGORMDAO) SetLocked(ctx context.Context, id int64, locked bool) error {
	return dao.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"locked": locked,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (dao *projectGORMDAO) SetPerspective(ctx context.Context, id int64, perspectiveID int64) error {
	return dao.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"perspective_id": perspectiveID,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

func (dao *projectGORMDAO) AddMember(ctx context.Context, m ProjectMember) (int64, error) {
	now := time.Now().UnixMilli()
	m.Ctime, m.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&m).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateMember
		}
		return 0, err
	}
	return m.Id, nil
}

func (dao *projectGORMDAO) RemoveMember(ctx context.Context, projectID, uid int64) error {
	return dao.db.WithContext(ctx).
		Where("project_id = ? AND uid = ?", projectID, uid).
		Delete(&ProjectMember{}).Error
}

func (dao *projectGORMDAO) Members(ctx context.Context, projectID int64) ([]ProjectMember, error) {
	var res []ProjectMember
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *projectGORMDAO) Member(ctx context.Context, projectID, uid int64) (ProjectMember, error) {
	var res ProjectMember
	err := dao.db.WithContext(ctx).
		Where("project_id = ? AND uid = ?", projectID, uid).
		First(&res).Error
	return res, err
}

func (dao *projectGORMDAO) SaveTag(ctx context.Context, t ProjectTag) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime, t.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&t).Error
	return t.Id, err
}

func (dao *projectGORMDAO) DeleteTag(ctx context.Context, projectID, tagID int64) error {
	return dao.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", tagID, projectID).
		Delete(&ProjectTag{}).Error
}

func (dao *projectGORMDAO) Tags(ctx context.Context, projectID int64) ([]ProjectTag, error) {
	var res []ProjectTag
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Project{},
		&ProjectMember{},
		&ProjectTag{},
	)
}

type Project struct {
	Id            int64  `gorm:"primaryKey,autoIncrement"`
	Name          string `gorm:"type:varchar(255)"`
	Description   string
	Type          string `gorm:"type:varchar(64)"`
	Guideline     string `gorm:"type:text"`
	CreatedBy     int64  `gorm:"index"`
	Locked        bool
	Collaborative bool
	PerspectiveId int64 `gorm:"index"`
	RandomOrder   bool
	Ctime         int64
	Utime         int64
}

func (Project) TableName() string {
	return "projects"
}

type ProjectMember struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId int64  `gorm:"uniqueIndex:uk_project_uid"`
	Uid       int64  `gorm:"uniqueIndex:uk_project_uid"`
	Role      string `gorm:"type:varchar(32)"`
	Ctime     int64
	Utime     int64
}

func (ProjectMember) TableName() string {
	return "project_members"
}

type ProjectTag struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId int64  `gorm:"index"`
	Text      string `gorm:"type:varchar(255)"`
	Ctime     int64
	Utime     int64
}

func (ProjectTag) TableName() string {
	return "project_tags"
}
