package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hatcher/taskboard/todo/entity"
)

func TestTaskCreateDefaults(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	task := mustCreateTask(t, ts, TaskCreate{Title: "write report"})
	require.Equal(t, entity.StatusPending, task.Status)
	require.Nil(t, task.Priority)
	require.Nil(t, task.CompletedAt)
	require.False(t, task.CreatedAt.IsZero())
	require.False(t, task.UpdatedAt.IsZero())
}

func TestTaskCreateValidation(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	tests := []struct {
		name string
		in   TaskCreate
	}{
		{name: "empty title", in: TaskCreate{}},
		{name: "bad status", in: TaskCreate{Title: "x", Status: strPtr("done")}},
		{name: "bad priority", in: TaskCreate{Title: "x", Priority: strPtr("urgent")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Create(context.Background(), tt.in)
			require.Error(t, err)
		})
	}
}

func TestTaskCreateCompletedStampsTime(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	task := mustCreateTask(t, ts, TaskCreate{Title: "done already", Status: strPtr("completed")})
	require.Equal(t, entity.StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
}

func TestTaskUpdateStatusRoundTrip(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	task := mustCreateTask(t, ts, TaskCreate{Title: "lifecycle"})
	beforeUpdate := task.UpdatedAt

	updated, err := ts.Update(context.Background(), task.ID, TaskUpdate{Status: strPtr("completed")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, entity.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	require.False(t, updated.CompletedAt.Before(beforeUpdate))

	reverted, err := ts.Update(context.Background(), task.ID, TaskUpdate{Status: strPtr("in_progress")})
	require.NoError(t, err)
	require.NotNil(t, reverted)
	require.Equal(t, entity.StatusInProgress, reverted.Status)
	require.Nil(t, reverted.CompletedAt)
}

func TestTaskUpdateMissingReturnsNil(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	task, err := ts.Update(context.Background(), "9e107d9d-0000-0000-0000-000000000000", TaskUpdate{Title: strPtr("x")})
	require.NoError(t, err)
	require.Nil(t, task)
}

func TestTaskGetByIDUsesCache(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	task := mustCreateTask(t, ts, TaskCreate{Title: "cached"})

	// First read populates the cache.
	got, err := ts.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "cached", got.Title)

	// Mutate the row behind the service's back: the cached view must win.
	require.NoError(t, ts.db.Model(&entity.Task{}).Where("id = ?", task.ID).Update("title", "changed").Error)
	got, err = ts.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	require.Equal(t, "cached", got.Title)

	// An update through the service evicts, so the next read is fresh.
	_, err = ts.Update(context.Background(), task.ID, TaskUpdate{Description: strPtr("touch")})
	require.NoError(t, err)
	got, err = ts.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	require.Equal(t, "changed", got.Title)
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	task := mustCreateTask(t, ts, TaskCreate{Title: "to delete"})

	deleted, err := ts.Delete(context.Background(), task.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := ts.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err = ts.Delete(context.Background(), task.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestTaskListFilterAndSort(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	session := "11111111-1111-1111-1111-111111111111"
	mustCreateTask(t, ts, TaskCreate{Title: "low", Priority: strPtr("low"), SessionID: &session})
	mustCreateTask(t, ts, TaskCreate{Title: "high", Priority: strPtr("high"), SessionID: &session})
	mustCreateTask(t, ts, TaskCreate{Title: "none", SessionID: &session})
	mustCreateTask(t, ts, TaskCreate{Title: "other session", Priority: strPtr("medium")})

	tasks, total, err := ts.List(context.Background(), TaskListQuery{
		PageNo:    1,
		SessionID: session,
		SortBy:    "priority",
		Order:     "desc",
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, tasks, 3)
	require.Equal(t, "high", tasks[0].Title)
	require.Equal(t, "low", tasks[1].Title)
	// Unset priority sorts last.
	require.Equal(t, "none", tasks[2].Title)
}

func TestTaskListStatusFilter(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	mustCreateTask(t, ts, TaskCreate{Title: "a"})
	mustCreateTask(t, ts, TaskCreate{Title: "b", Status: strPtr("in_progress")})

	tasks, total, err := ts.List(context.Background(), TaskListQuery{PageNo: 1, Status: "in_progress"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, tasks, 1)
	require.Equal(t, "b", tasks[0].Title)

	_, _, err = ts.List(context.Background(), TaskListQuery{PageNo: 1, Status: "done"})
	require.Error(t, err)
}

func TestTaskListPaging(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	for i := 0; i < TasksPerPage+3; i++ {
		mustCreateTask(t, ts, TaskCreate{Title: "t", DueDate: nil})
	}

	tasks, total, err := ts.List(context.Background(), TaskListQuery{PageNo: 1})
	require.NoError(t, err)
	require.EqualValues(t, TasksPerPage+3, total)
	require.Len(t, tasks, TasksPerPage)

	tasks, _, err = ts.List(context.Background(), TaskListQuery{PageNo: 2})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
}

func TestTaskSortExpr(t *testing.T) {
	t.Parallel()

	_, err := taskSortExpr("title", "asc")
	require.Error(t, err)
	_, err = taskSortExpr("updated_at", "sideways")
	require.Error(t, err)

	expr, err := taskSortExpr("", "")
	require.NoError(t, err)
	require.Equal(t, "updated_at desc", expr)

	expr, err = taskSortExpr("due_date", "asc")
	require.NoError(t, err)
	require.Equal(t, "due_date IS NULL, due_date asc", expr)
}

func TestTaskDueDateSortNullsLast(t *testing.T) {
	t.Parallel()
	ts, _ := newTestServices(t)

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mustCreateTask(t, ts, TaskCreate{Title: "no due"})
	mustCreateTask(t, ts, TaskCreate{Title: "due", DueDate: &due})

	tasks, _, err := ts.List(context.Background(), TaskListQuery{PageNo: 1, SortBy: "due_date", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "due", tasks[0].Title)
	require.Equal(t, "no due", tasks[1].Title)
}
