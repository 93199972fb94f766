package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/hatcher/taskboard/models"
	"github.com/hatcher/taskboard/pkg/logs"
	"github.com/hatcher/taskboard/pkg/util"
	"github.com/hatcher/taskboard/todo/entity"
)

// BulkUpdate 批量部分更新。每项独立处理，单项失败不中断整批，
// 结果顺序与输入顺序一致，每个输入项恰好产生一条结果。
func (ts *TaskService) BulkUpdate(ctx context.Context, req BulkUpdateRequest) BulkResult {
	results := make([]ItemOutcome, 0, len(req.Tasks))
	for _, item := range req.Tasks {
		results = append(results, ts.bulkUpdateOne(ctx, item))
	}
	logs.CtxInfof(ctx, "批量更新任务完成, 总数:%d, 成功:%d", len(results), BulkResult{Results: results}.Succeeded())
	return BulkResult{Results: results}
}

func (ts *TaskService) bulkUpdateOne(ctx context.Context, item BulkUpdateItem) ItemOutcome {
	// 字段校验在查库之前，非法项不触达存储
	if err := item.TaskUpdate.validate(); err != nil {
		return failedOutcome(item.ID, ErrKindValidation, err.Error())
	}

	var task entity.Task
	err := ts.db.WithContext(ctx).Where("id = ?", item.ID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return failedOutcome(item.ID, ErrKindNotFound, "任务不存在")
		}
		return failedOutcome(item.ID, ErrKindPersistence, err.Error())
	}

	applyTaskUpdate(&task, item.TaskUpdate, time.Now().UTC())

	err = models.Update(ts.db.WithContext(ctx), &task)
	if err != nil {
		logs.CtxErrorf(ctx, "批量更新任务持久化失败, id:%s, 错误:%v", item.ID, err)
		return failedOutcome(item.ID, ErrKindPersistence, err.Error())
	}
	ts.cache.Evict(ctx, item.ID)
	return successOutcome(&task)
}

// BulkDelete 批量删除。重复ID只处理一次（保留首次出现的位置），
// 删除批次成员不影响批次本身与其余成员。
func (ts *TaskService) BulkDelete(ctx context.Context, ids []string) BulkResult {
	ids = util.RemoveDuplicates(ids)
	results := make([]ItemOutcome, 0, len(ids))
	for _, id := range ids {
		results = append(results, ts.bulkDeleteOne(ctx, id))
	}
	logs.CtxInfof(ctx, "批量删除任务完成, 总数:%d, 成功:%d", len(results), BulkResult{Results: results}.Succeeded())
	return BulkResult{Results: results}
}

func (ts *TaskService) bulkDeleteOne(ctx context.Context, id string) ItemOutcome {
	result := ts.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Task{})
	if result.Error != nil {
		logs.CtxErrorf(ctx, "批量删除任务持久化失败, id:%s, 错误:%v", id, result.Error)
		return failedOutcome(id, ErrKindPersistence, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return failedOutcome(id, ErrKindNotFound, "任务不存在")
	}
	ts.cache.Evict(ctx, id)
	return ItemOutcome{ID: id, OK: true}
}
