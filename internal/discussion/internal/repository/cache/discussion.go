package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/labelhub/labelhub/internal/discussion/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	// 活跃讨论读多写少，缓存五分钟
	activeExpiration = 300 * time.Second
	// 待关闭集合用 hash 存，field 是讨论 ID。
	// 关闭入口和补偿任务会并发碰它，必须逐项原子写
	pendingHashKey = "labelhub:discussion:pending_closures"
)

var (
	ErrActiveNotCached   = errors.New("活跃讨论不在缓存里")
	ErrNotPendingClosure = errors.New("讨论不在待关闭集合里")
)

type DiscussionCache interface {
	SetActive(ctx context.Context, d domain.Discussion) error
	GetActive(ctx context.Context, projectID int64) (domain.Discussion, error)
	DelActive(ctx context.Context, projectID int64) error

	// MarkPendingClosure 数据库不可用时先把关闭意图记下来
	MarkPendingClosure(ctx context.Context, d domain.Discussion) error
	// CancelPendingClosure 讨论不在待关闭集合里返回 ErrNotPendingClosure
	CancelPendingClosure(ctx context.Context, discussionID int64) error
	PendingClosures(ctx context.Context) ([]domain.Discussion, error)
}

type discussionCache struct {
	ec ecache.Cache
	// cmd 直连 redis，ecache 没有 hash 操作
	cmd redis.Cmdable
}

func NewDiscussionCache(ec ecache.Cache, cmd redis.Cmdable) DiscussionCache {
	return &discussionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "discussion:",
		},
		cmd: cmd,
	}
}

func (c *discussionCache) SetActive(ctx context.Context, d domain.Discussion) error {
	data, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "序列化讨论失败")
	}
	return c.ec.Set(ctx, c.activeKey(d.ProjectID), string(data), activeExpiration)
}

func (c *discussionCache) GetActive(ctx context.Context, projectID int64) (domain.Discussion, error) {
	val := c.ec.Get(ctx, c.activeKey(projectID))
	if val.KeyNotFound() {
		return domain.Discussion{}, ErrActiveNotCached
	}
	if val.Err != nil {
		return domain.Discussion{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var d domain.Discussion
	err := json.Unmarshal([]byte(val.Val.(string)), &d)
	if err != nil {
		return domain.Discussion{}, errors.Wrap(err, "反序列化讨论失败")
	}
	return d, nil
}

func (c *discussionCache) DelActive(ctx context.Context, projectID int64) error {
	_, err := c.ec.Delete(ctx, c.activeKey(projectID))
	return err
}

func (c *discussionCache) MarkPendingClosure(ctx context.Context, d domain.Discussion) error {
	data, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "序列化待关闭讨论失败")
	}
	// 不设过期，补偿任务处理完才删
	return c.cmd.HSet(ctx, pendingHashKey, c.pendingField(d.ID), string(data)).Err()
}

func (c *discussionCache) CancelPendingClosure(ctx context.Context, discussionID int64) error {
	n, err := c.cmd.HDel(ctx, pendingHashKey, c.pendingField(discussionID)).Result()
	if err != nil {
		return errors.Wrap(err, "移除待关闭讨论出错")
	}
	if n == 0 {
		return ErrNotPendingClosure
	}
	return nil
}

func (c *discussionCache) PendingClosures(ctx context.Context) ([]domain.Discussion, error) {
	vals, err := c.cmd.HGetAll(ctx, pendingHashKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "查询待关闭集合出错")
	}
	res := make([]domain.Discussion, 0, len(vals))
	for _, val := range vals {
		var d domain.Discussion
		if err = json.Unmarshal([]byte(val), &d); err != nil {
			return nil, errors.Wrap(err, "反序列化待关闭讨论失败")
		}
		res = append(res, d)
	}
	return res, nil
}

func (c *discussionCache) pendingField(discussionID int64) string {
	return strconv.FormatInt(discussionID, 10)
}

func (c *discussionCache) activeKey(projectID int64) string {
	return fmt.Sprintf("active:%d", projectID)
}
