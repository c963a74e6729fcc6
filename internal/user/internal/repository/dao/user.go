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
	ErrDuplicateUser  = errors.New("邮箱或用户名已被占用")
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

const uniqueIndexErrNo uint16 = 1062

type UserDAO interface {
	Create(ctx context.Context, u User) (int64, error)
	Update(ctx context.Context, u User) error
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]User, error)
}

type userGORMDAO struct {
	db *egorm.Component
}

func NewUserGORMDAO(db *egorm.Component) UserDAO {
	return &userGORMDAO{db: db}
}

func (dao *userGORMDAO) Create(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&u).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateUser
		}
		return 0, err
	}
	return u.Id, nil
}

func (dao *userGORMDAO) Update(ctx context.Context, u User) error {
	return dao.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", u.Id).
		Updates(map[string]any{
			"nickname": u.Nickname,
			"avatar":   u.Avatar,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (dao *userGORMDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}

func (dao *userGORMDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := dao.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return u, err
}

func (dao *userGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]User, error) {
	var res []User
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Email    string `gorm:"type:varchar(255);uniqueIndex:uk_email"`
	Username string `gorm:"type:varchar(128);uniqueIndex:uk_username"`
	Password string `gorm:"type:varchar(128)"`
	Nickname string `gorm:"type:varchar(128)"`
	Avatar   string `gorm:"type:varchar(512)"`
	Ctime    int64
	Utime    int64
}

func (User) TableName() string {
	return "users"
}
