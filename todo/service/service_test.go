package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hatcher/taskboard/pkg/ormx"
	"github.com/hatcher/taskboard/pkg/redisx"
	"github.com/hatcher/taskboard/pkg/util"
	"github.com/hatcher/taskboard/todo/cache"
	"github.com/hatcher/taskboard/todo/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := ormx.NewDBClient(ormx.DBConfig{
		DbType:             "sqlite",
		DSN:                ":memory:",
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.TaskBatch{}, &entity.Task{}))
	return db
}

func newTestCache(t *testing.T) *cache.TaskCache {
	t.Helper()
	rdb, err := redisx.NewRedis(redisx.RedisConfig{RedisType: "miniredis"})
	require.NoError(t, err)
	return cache.NewTaskCache(rdb, time.Minute)
}

func newTestServices(t *testing.T) (*TaskService, *BatchService) {
	t.Helper()
	db := newTestDB(t)
	return NewTaskService(db, newTestCache(t)), NewBatchService(db)
}

func mustCreateTask(t *testing.T, ts *TaskService, in TaskCreate) *entity.Task {
	t.Helper()
	task, err := ts.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	return task
}

func strPtr(s string) *string {
	return util.Of(s)
}
