package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hatcher/taskboard/pkg/logs"
	"github.com/hatcher/taskboard/pkg/redisx"
	"github.com/hatcher/taskboard/todo/entity"
)

const taskKeyPrefix = "taskboard:task:"

// TaskCache 任务读缓存，所有写操作后由service失效对应key。
// 缓存不可用时仅记录日志，读写均降级到数据库。
type TaskCache struct {
	client redisx.Redis
	ttl    time.Duration
}

func NewTaskCache(client redisx.Redis, ttl time.Duration) *TaskCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TaskCache{
		client: client,
		ttl:    ttl,
	}
}

func taskKey(id string) string {
	return taskKeyPrefix + id
}

// Get 查询缓存，未命中或反序列化失败返回false
func (tc *TaskCache) Get(ctx context.Context, id string) (*entity.Task, bool) {
	if tc == nil || tc.client == nil {
		return nil, false
	}
	raw, err := tc.client.Get(ctx, taskKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logs.CtxWarnf(ctx, "查询任务缓存失败, id:%s, 错误:%v", id, err)
		}
		return nil, false
	}
	var task entity.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		logs.CtxWarnf(ctx, "任务缓存反序列化失败, id:%s, 错误:%v", id, err)
		tc.Evict(ctx, id)
		return nil, false
	}
	return &task, true
}

// Set 写入缓存
func (tc *TaskCache) Set(ctx context.Context, task *entity.Task) {
	if tc == nil || tc.client == nil || task == nil {
		return
	}
	raw, err := json.Marshal(task)
	if err != nil {
		logs.CtxWarnf(ctx, "任务缓存序列化失败, id:%s, 错误:%v", task.ID, err)
		return
	}
	if err := tc.client.Set(ctx, taskKey(task.ID), raw, tc.ttl).Err(); err != nil {
		logs.CtxWarnf(ctx, "写入任务缓存失败, id:%s, 错误:%v", task.ID, err)
	}
}

// Evict 失效缓存
func (tc *TaskCache) Evict(ctx context.Context, ids ...string) {
	if tc == nil || tc.client == nil || len(ids) == 0 {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, taskKey(id))
	}
	if err := tc.client.Del(ctx, keys...).Err(); err != nil {
		logs.CtxWarnf(ctx, "失效任务缓存失败, keys:%v, 错误:%v", keys, err)
	}
}
