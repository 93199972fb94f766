package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/hatcher/taskboard/models"
	"github.com/hatcher/taskboard/todo/entity"
)

// BatchesPerPage 批次列表固定分页大小
const BatchesPerPage = 10

type BatchService struct {
	db *gorm.DB
}

func NewBatchService(db *gorm.DB) *BatchService {
	return &BatchService{
		db: db,
	}
}

// Create 创建批次及其任务，同一事务内完成，任一任务失败整体回滚。
// 任务继承批次的session_id。
func (bs *BatchService) Create(ctx context.Context, in BatchCreate) (*entity.TaskBatch, error) {
	if len(in.Tasks) == 0 {
		return nil, errors.Errorf("批次至少包含一个任务")
	}
	tasks := make([]*entity.Task, 0, len(in.Tasks))
	for i, tc := range in.Tasks {
		tc.SessionID = in.SessionID
		task, err := buildTask(tc)
		if err != nil {
			return nil, errors.WithMessagef(err, "批次任务[%d]非法", i)
		}
		tasks = append(tasks, task)
	}

	batch := &entity.TaskBatch{
		SessionID: in.SessionID,
		Reason:    in.Reason,
	}
	err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := models.Insert(tx, batch); err != nil {
			return errors.WithMessagef(err, "创建批次失败")
		}
		for _, task := range tasks {
			task.BatchID = &batch.ID
			if err := models.Insert(tx, task); err != nil {
				return errors.WithMessagef(err, "创建批次任务失败")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bs.GetByID(ctx, batch.ID)
}

// GetByID 获取批次及其任务，不存在返回nil
func (bs *BatchService) GetByID(ctx context.Context, id string) (*entity.TaskBatch, error) {
	var batch entity.TaskBatch
	err := bs.db.WithContext(ctx).Where("id = ?", id).Preload("Tasks").First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessagef(err, "获取批次失败, id:%s", id)
	}
	return &batch, nil
}

// List 分页获取批次列表，按创建时间倒序
func (bs *BatchService) List(ctx context.Context, q BatchListQuery) ([]entity.TaskBatch, int64, error) {
	query := bs.db.WithContext(ctx).Model(&entity.TaskBatch{})
	if q.SessionID != "" {
		query = query.Where("session_id = ?", q.SessionID)
	}
	total, err := models.Count(query)
	if err != nil {
		return nil, 0, errors.WithMessagef(err, "统计批次失败")
	}

	pageable := models.PageRequest(q.PageNo, BatchesPerPage)
	var batches []entity.TaskBatch
	err = query.Preload("Tasks").
		Order("created_at desc").
		Offset(pageable.Offset()).
		Limit(pageable.PageSize).
		Find(&batches).
		Error
	if err != nil {
		return nil, 0, errors.WithMessagef(err, "获取批次列表失败")
	}
	return batches, total, nil
}

// GetLatest 获取最近创建的批次，不存在返回nil
func (bs *BatchService) GetLatest(ctx context.Context, sessionID string) (*entity.TaskBatch, error) {
	query := bs.db.WithContext(ctx).Model(&entity.TaskBatch{})
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}
	var batch entity.TaskBatch
	err := query.Preload("Tasks").Order("created_at desc").First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessagef(err, "获取最新批次失败")
	}
	return &batch, nil
}
