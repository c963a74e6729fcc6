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
	ErrDuplicateVote     = errors.New("已经投过票")
	ErrInvalidTransition = errors.New("投票会话状态不允许该操作")
	ErrRecordNotFound    = gorm.ErrRecordNotFound
)

const uniqueIndexErrNo uint16 = 1062

type VotingDAO interface {
	Create(ctx context.Context, s Session) (int64, error)
	GetByID(ctx context.Context, id int64) (Session, error)
	// Latest 项目里最近创建的一轮会话
	Latest(ctx context.Context, projectID int64) (Session, error)
	LatestByStatus(ctx context.Context, projectID int64, status string) (Session, error)
	List(ctx context.Context, projectID int64, offset, limit int) ([]Session, error)
	// Begin not_started -> voting，并发加环境下靠状态条件保证只成功一次
	Begin(ctx context.Context, id, discussionID int64, guideline string) error
	// Complete voting/not_started -> completed
	Complete(ctx context.Context, id int64) error
	CompleteAllActive(ctx context.Context, projectID int64) error

	CreateVote(ctx context.Context, v Vote) (int64, error)
	Tally(ctx context.Context, sessionID int64) (agree int64, disagree int64, err error)
	Votes(ctx context.Context, sessionID int64) ([]Vote, error)
}

type votingGORMDAO struct {
	db *egorm.Component
}

func NewVotingGORMDAO(db *egorm.Component) VotingDAO {
	return &votingGORMDAO{db: db}
}

func (dao *votingGORMDAO) Create(ctx context.Context, s Session) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	if s.Status == "" {
		s.Status = "not_started"
	}
	err := dao.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (dao *votingGORMDAO) GetByID(ctx context.Context, id int64) (Session, error) {
	var s Session
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (dao *votingGORMDAO) Latest(ctx context.Context, projectID int64) (Session, error) {
	var s Session
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id DESC").First(&s).Error
	return s, err
}

func (dao *votingGORMDAO) LatestByStatus(ctx context.Context, projectID int64, status string) (Session, error) {
	var s Session
	err := dao.db.WithContext(ctx).
		Where("project_id = ? AND status = ?", projectID, status).
		Order("id DESC").First(&s).Error
	return s, err
}

func (dao *votingGORMDAO) List(ctx context.Context, projectID int64, offset, limit int) ([]Session, error) {
	var res []Session
	err := dao.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *votingGORMDAO) Begin(ctx context.Context, id, discussionID int64, guideline string) error {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&Session{}).
		Where("id = ? AND status = ?", id, "not_started").
		Updates(map[string]any{
			"status":        "voting",
			"discussion_id": discussionID,
			"guideline":     guideline,
			"started_at":    now,
			"utime":         now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (dao *votingGORMDAO) Complete(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&Session{}).
		Where("id = ? AND status <> ?", id, "completed").
		Updates(map[string]any{
			"status":   "completed",
			"ended_at": now,
			"utime":    now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (dao *votingGORMDAO) CompleteAllActive(ctx context.Context, projectID int64) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Model(&Session{}).
		Where("project_id = ? AND status <> ?", projectID, "completed").
		Updates(map[string]any{
			"status":   "completed",
			"ended_at": now,
			"utime":    now,
		}).Error
}

func (dao *votingGORMDAO) CreateVote(ctx context.Context, v Vote) (int64, error) {
	now := time.Now().UnixMilli()
	v.Ctime, v.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&v).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateVote
		}
		return 0, err
	}
	return v.Id, nil
}

func (dao *votingGORMDAO) Tally(ctx context.Context, sessionID int64) (int64, int64, error) {
	type row struct {
		Agree bool
		Cnt   int64
	}
	var rows []row
	err := dao.db.WithContext(ctx).Model(&Vote{}).
		Select("agree, COUNT(*) AS cnt").
		Where("session_id = ?", sessionID).
		Group("agree").Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}
	var agree, disagree int64
	for _, r := range rows {
		if r.Agree {
			agree = r.Cnt
		} else {
			disagree = r.Cnt
		}
	}
	return agree, disagree, nil
}

func (dao *votingGORMDAO) Votes(ctx context.Context, sessionID int64) ([]Vote, error) {
	var res []Vote
	err := dao.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Session{},
		&Vote{},
	)
}

type Session struct {
	Id               int64  `gorm:"primaryKey,autoIncrement"`
	ProjectId        int64  `gorm:"index"`
	DiscussionId     int64
	Guideline        string `gorm:"type:text"`
	Status           string `gorm:"type:varchar(20);index"`
	PreviousVotingId int64
	StartedAt        int64
	EndedAt          int64
	Ctime            int64
	Utime            int64
}

func (Session) TableName() string {
	return "voting_sessions"
}

type Vote struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	SessionId int64 `gorm:"uniqueIndex:uk_session_uid"`
	Uid       int64 `gorm:"uniqueIndex:uk_session_uid"`
	Agree     bool
	Ctime     int64
	Utime     int64
}

func (Vote) TableName() string {
	return "votes"
}
