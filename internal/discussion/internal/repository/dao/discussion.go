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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrActiveDiscussionExists = errors.New("项目已有活跃讨论")
	ErrDuplicateComment       = errors.New("评论已经同步过")
	ErrRecordNotFound         = gorm.ErrRecordNotFound
)

const uniqueIndexErrNo uint16 = 1062

type DiscussionDAO interface {
	Create(ctx context.Context, d Discussion) (int64, error)
	GetByID(ctx context.Context, id int64) (Discussion, error)
	GetActive(ctx context.Context, projectID int64) (Discussion, error)
	Close(ctx context.Context, id int64) error
	List(ctx context.Context, projectID int64, offset, limit int) ([]Discussion, error)

	CreateComment(ctx context.Context, c Comment) error
	GetComment(ctx context.Context, id int64) (Comment, error)
	UpdateComment(ctx context.Context, id int64, content string) error
	DeleteComment(ctx context.Context, id int64) error
	Comments(ctx context.Context, discussionID int64, offset, limit int) ([]Comment, error)
	CountComments(ctx context.Context, discussionID int64) (int64, error)
}

type discussionGORMDAO struct {
	db *egorm.Component
}

func NewDiscussionGORMDAO(db *egorm.Component) DiscussionDAO {
	return &discussionGORMDAO{db: db}
}

func (dao *discussionGORMDAO) Create(ctx context.Context, d Discussion) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime, d.Utime = now, now
	d.Status = "active"
	d.Active = sql.NullInt16{Int16: 1, Valid: true}
	err := dao.db.WithContext(ctx).Create(&d).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return 0, ErrActiveDiscussionExists
		}
		return 0, err
	}
	return d.Id, nil
}

func (dao *discussionGORMDAO) GetByID(ctx context.Context, id int64) (Discussion, error) {
	var d Discussion
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	return d, err
}

func (dao *discussionGORMDAO) GetActive(ctx context.Context, projectID int64) (Discussion, error) {
	var d Discussion
	err := dao.db.WithContext(ctx).
		Where("project_id = ? AND active = ?", projectID, 1).
		First(&d).Error
	return d, err
}

// Close 置空 active 释放唯一索引，项目才能开下一个讨论
func (dao *discussionGORMDAO) Close(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Model(&Discussion{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": "closed",
			"active": nil,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (dao *discussionGORMDAO) List(ctx context.Context, projectID int64, offset, limit int) ([]Discussion, error) {
	var res []Discussion
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *discussionGORMDAO) CreateComment(ctx context.Context, c Comment) error {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return ErrDuplicateComment
		}
		return err
	}
	return nil
}

func (dao *discussionGORMDAO) GetComment(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (dao *discussionGORMDAO) UpdateComment(ctx context.Context, id int64, content string) error {
	return dao.db.WithContext(ctx).Model(&Comment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"content": content,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (dao *discussionGORMDAO) DeleteComment(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Comment{}).Error
}

func (dao *discussionGORMDAO) Comments(ctx context.Context, discussionID int64, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := dao.db.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Order("id ASC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *discussionGORMDAO) CountComments(ctx context.Context, discussionID int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Comment{}).
		Where("discussion_id = ?", discussionID).Count(&cnt).Error
	return cnt, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Discussion{},
		&Comment{},
	)
}

type Discussion struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ProjectId int64 `gorm:"uniqueIndex:uk_project_active"`
	// Active 活跃时恒为 1，关闭后置 NULL。
	// MySQL 的唯一索引不拦 NULL，正好表达"一个项目至多一个活跃讨论"
	Active    sql.NullInt16 `gorm:"uniqueIndex:uk_project_active"`
	Title     string        `gorm:"type:varchar(255)"`
	Status    string        `gorm:"type:varchar(20)"`
	CreatedBy int64
	Ctime     int64
	Utime     int64
}

func (Discussion) TableName() string {
	return "discussions"
}

type Comment struct {
	// Id 服务端雪花 ID，离线同步的评论也由服务端重新发号
	Id           int64 `gorm:"primaryKey"`
	DiscussionId int64 `gorm:"index;uniqueIndex:uk_discussion_temp"`
	Uid          int64
	Content      string `gorm:"type:text"`
	// TempId 在线发表的评论恒为 NULL，不占唯一索引
	TempId   sql.NullString `gorm:"type:varchar(64);uniqueIndex:uk_discussion_temp"`
	IsSynced bool
	Ctime    int64
	Utime    int64
}

func (Comment) TableName() string {
	return "discussion_comments"
}
