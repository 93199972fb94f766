package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hatcher/taskboard/todo/entity"
)

func TestBatchCreateAtomicWithTasks(t *testing.T) {
	t.Parallel()
	_, bs := newTestServices(t)

	session := "22222222-2222-2222-2222-222222222222"
	batch, err := bs.Create(context.Background(), BatchCreate{
		SessionID: &session,
		Reason:    "weekly review",
		Tasks: []TaskCreate{
			{Title: "triage inbox"},
			{Title: "plan sprint", Priority: strPtr("high")},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, batch.ID)
	require.Equal(t, "weekly review", batch.Reason)
	require.Len(t, batch.Tasks, 2)
	for _, task := range batch.Tasks {
		require.NotNil(t, task.BatchID)
		require.Equal(t, batch.ID, *task.BatchID)
		// Tasks inherit the batch session.
		require.NotNil(t, task.SessionID)
		require.Equal(t, session, *task.SessionID)
	}
}

func TestBatchCreateRequiresTasks(t *testing.T) {
	t.Parallel()
	_, bs := newTestServices(t)

	_, err := bs.Create(context.Background(), BatchCreate{Reason: "empty"})
	require.Error(t, err)
}

func TestBatchCreateRejectsInvalidTask(t *testing.T) {
	t.Parallel()
	ts, bs := newTestServices(t)

	_, err := bs.Create(context.Background(), BatchCreate{
		Reason: "broken",
		Tasks: []TaskCreate{
			{Title: "ok"},
			{Title: ""},
		},
	})
	require.Error(t, err)

	// Nothing may have been persisted.
	_, total, err := ts.List(context.Background(), TaskListQuery{PageNo: 1})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	batches, batchTotal, err := bs.List(context.Background(), BatchListQuery{PageNo: 1})
	require.NoError(t, err)
	require.EqualValues(t, 0, batchTotal)
	require.Empty(t, batches)
}

func TestBatchGetByIDMissing(t *testing.T) {
	t.Parallel()
	_, bs := newTestServices(t)

	batch, err := bs.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.Nil(t, batch)
}

func TestBatchListAndLatest(t *testing.T) {
	t.Parallel()
	_, bs := newTestServices(t)

	first, err := bs.Create(context.Background(), BatchCreate{
		Reason: "first",
		Tasks:  []TaskCreate{{Title: "a"}},
	})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	second, err := bs.Create(context.Background(), BatchCreate{
		Reason: "second",
		Tasks:  []TaskCreate{{Title: "b"}},
	})
	require.NoError(t, err)

	batches, total, err := bs.List(context.Background(), BatchListQuery{PageNo: 1})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, batches, 2)
	require.Equal(t, second.ID, batches[0].ID)
	require.Equal(t, first.ID, batches[1].ID)

	latest, err := bs.GetLatest(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, second.ID, latest.ID)
	require.Len(t, latest.Tasks, 1)
}

func TestBatchListSessionFilter(t *testing.T) {
	t.Parallel()
	_, bs := newTestServices(t)

	session := "33333333-3333-3333-3333-333333333333"
	_, err := bs.Create(context.Background(), BatchCreate{
		SessionID: &session,
		Reason:    "mine",
		Tasks:     []TaskCreate{{Title: "a"}},
	})
	require.NoError(t, err)
	_, err = bs.Create(context.Background(), BatchCreate{
		Reason: "other",
		Tasks:  []TaskCreate{{Title: "b"}},
	})
	require.NoError(t, err)

	batches, total, err := bs.List(context.Background(), BatchListQuery{PageNo: 1, SessionID: session})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, batches, 1)
	require.Equal(t, "mine", batches[0].Reason)

	latest, err := bs.GetLatest(context.Background(), session)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, "mine", latest.Reason)

	var tasks []entity.Task
	require.NoError(t, bs.db.Where("batch_id = ?", batches[0].ID).Find(&tasks).Error)
	require.Len(t, tasks, 1)
}
