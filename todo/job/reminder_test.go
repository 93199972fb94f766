package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hatcher/taskboard/pkg/ormx"
	"github.com/hatcher/taskboard/pkg/util"
	"github.com/hatcher/taskboard/todo/entity"
)

func TestReminderOverdueTasks(t *testing.T) {
	t.Parallel()
	db, err := ormx.NewDBClient(ormx.DBConfig{
		DbType:             "sqlite",
		DSN:                ":memory:",
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.TaskBatch{}, &entity.Task{}))

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	overdue := &entity.Task{Title: "overdue", Status: entity.StatusPending, DueDate: &past}
	doneOverdue := &entity.Task{Title: "done", Status: entity.StatusCompleted, DueDate: &past, CompletedAt: util.Of(past)}
	upcoming := &entity.Task{Title: "upcoming", Status: entity.StatusPending, DueDate: &future}
	noDue := &entity.Task{Title: "no due", Status: entity.StatusInProgress}
	for _, task := range []*entity.Task{overdue, doneOverdue, upcoming, noDue} {
		require.NoError(t, db.Create(task).Error)
	}

	r := NewReminder(db)
	tasks, err := r.overdueTasks(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "overdue", tasks[0].Title)

	// Sweep only reads, it must leave every row untouched.
	r.Sweep()
	var total int64
	require.NoError(t, db.Model(&entity.Task{}).Count(&total).Error)
	require.EqualValues(t, 4, total)
}
