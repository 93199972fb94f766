package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/hatcher/taskboard/models"
	"github.com/hatcher/taskboard/todo/cache"
	"github.com/hatcher/taskboard/todo/entity"
)

// TasksPerPage 任务列表固定分页大小
const TasksPerPage = 10

type TaskService struct {
	db    *gorm.DB
	cache *cache.TaskCache
}

func NewTaskService(db *gorm.DB, taskCache *cache.TaskCache) *TaskService {
	return &TaskService{
		db:    db,
		cache: taskCache,
	}
}

// Create 创建任务
func (ts *TaskService) Create(ctx context.Context, in TaskCreate) (*entity.Task, error) {
	task, err := buildTask(in)
	if err != nil {
		return nil, err
	}
	err = models.Insert(ts.db.WithContext(ctx), task)
	if err != nil {
		return nil, errors.WithMessagef(err, "创建任务失败")
	}
	return task, nil
}

// GetByID 根据ID获取任务，优先读缓存，不存在返回nil
func (ts *TaskService) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	if task, ok := ts.cache.Get(ctx, id); ok {
		return task, nil
	}
	var task entity.Task
	err := ts.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessagef(err, "获取任务失败, id:%s", id)
	}
	ts.cache.Set(ctx, &task)
	return &task, nil
}

// List 分页获取任务列表，支持状态、会话过滤与排序
func (ts *TaskService) List(ctx context.Context, q TaskListQuery) ([]entity.Task, int64, error) {
	if q.Status != "" && !entity.TaskStatus(q.Status).Valid() {
		return nil, 0, errors.Errorf("状态取值非法: %s", q.Status)
	}
	order, err := taskSortExpr(q.SortBy, q.Order)
	if err != nil {
		return nil, 0, err
	}

	where := ""
	var args []interface{}
	if q.Status != "" {
		where = "status = ?"
		args = append(args, q.Status)
	}
	if q.SessionID != "" {
		if where != "" {
			where += " AND "
		}
		where += "session_id = ?"
		args = append(args, q.SessionID)
	}

	pageable := models.PageRequest(q.PageNo, TasksPerPage)
	return models.PageQuery[entity.Task](ts.db.WithContext(ctx), pageable, order, where, args...)
}

// Update 更新任务并应用状态流转规则，不存在返回nil
func (ts *TaskService) Update(ctx context.Context, id string, in TaskUpdate) (*entity.Task, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var task entity.Task
	err := ts.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithMessagef(err, "获取任务失败, id:%s", id)
	}
	applyTaskUpdate(&task, in, time.Now().UTC())
	err = models.Update(ts.db.WithContext(ctx), &task)
	if err != nil {
		return nil, errors.WithMessagef(err, "更新任务失败, id:%s", id)
	}
	ts.cache.Evict(ctx, id)
	return &task, nil
}

// Delete 删除任务，返回是否存在。任务属于批次时不影响批次与其余成员。
func (ts *TaskService) Delete(ctx context.Context, id string) (bool, error) {
	result := ts.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Task{})
	if result.Error != nil {
		return false, errors.WithMessagef(result.Error, "删除任务失败, id:%s", id)
	}
	ts.cache.Evict(ctx, id)
	return result.RowsAffected > 0, nil
}

// buildTask 校验创建参数并构建实体
func buildTask(in TaskCreate) (*entity.Task, error) {
	if in.Title == "" {
		return nil, errors.Errorf("标题不能为空")
	}
	if len(in.Title) > 255 {
		return nil, errors.Errorf("标题过长，最多255个字符")
	}
	if in.Description != nil && len(*in.Description) > 1000 {
		return nil, errors.Errorf("描述过长，最多1000个字符")
	}
	task := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		SessionID:   in.SessionID,
		Status:      entity.StatusPending,
	}
	if in.Status != nil {
		status := entity.TaskStatus(*in.Status)
		if !status.Valid() {
			return nil, errors.Errorf("状态取值非法: %s", *in.Status)
		}
		task.Status = status
	}
	if in.Priority != nil {
		priority := entity.TaskPriority(*in.Priority)
		if !priority.Valid() {
			return nil, errors.Errorf("优先级取值非法: %s", *in.Priority)
		}
		task.Priority = &priority
	}
	if task.Status == entity.StatusCompleted {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}
	return task, nil
}

// validate 校验部分更新的字段取值，任何库操作前调用
func (in *TaskUpdate) validate() error {
	if in.Title != nil {
		if *in.Title == "" {
			return errors.Errorf("标题不能为空")
		}
		if len(*in.Title) > 255 {
			return errors.Errorf("标题过长，最多255个字符")
		}
	}
	if in.Description != nil && len(*in.Description) > 1000 {
		return errors.Errorf("描述过长，最多1000个字符")
	}
	if in.Status != nil && !entity.TaskStatus(*in.Status).Valid() {
		return errors.Errorf("状态取值非法: %s", *in.Status)
	}
	if in.Priority != nil && !entity.TaskPriority(*in.Priority).Valid() {
		return errors.Errorf("优先级取值非法: %s", *in.Priority)
	}
	return nil
}

// applyTaskUpdate 应用部分更新，completed_at只经由流转规则变化
func applyTaskUpdate(task *entity.Task, in TaskUpdate, now time.Time) {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = in.Description
	}
	if in.Priority != nil {
		priority := entity.TaskPriority(*in.Priority)
		task.Priority = &priority
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Status != nil {
		oldStatus := task.Status
		newStatus := entity.TaskStatus(*in.Status)
		task.Status = newStatus
		task.CompletedAt = ApplyStatusTransition(oldStatus, newStatus, task.CompletedAt, now)
	}
}

// taskSortExpr 列表排序表达式。priority与status按业务顺序排序，NULL排在最后。
func taskSortExpr(sortBy, order string) (string, error) {
	if order == "" {
		order = "desc"
	}
	if order != "asc" && order != "desc" {
		return "", errors.Errorf("排序方向非法: %s", order)
	}
	if sortBy == "" {
		sortBy = "updated_at"
	}
	switch sortBy {
	case "priority":
		if order == "asc" {
			return "CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 ELSE 4 END", nil
		}
		return "CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END", nil
	case "status":
		if order == "asc" {
			return "CASE status WHEN 'pending' THEN 1 WHEN 'in_progress' THEN 2 WHEN 'completed' THEN 3 END", nil
		}
		return "CASE status WHEN 'completed' THEN 1 WHEN 'in_progress' THEN 2 WHEN 'pending' THEN 3 END", nil
	case "due_date":
		return "due_date IS NULL, due_date " + order, nil
	case "created_at", "updated_at":
		return sortBy + " " + order, nil
	default:
		return "", errors.Errorf("排序字段非法: %s", sortBy)
	}
}
