package job

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hatcher/taskboard/pkg/logs"
	"github.com/hatcher/taskboard/pkg/schedule"
	"github.com/hatcher/taskboard/todo/entity"
)

// Reminder 到期提醒任务：周期扫描已过期且未完成的任务并告警，只读不改库
type Reminder struct {
	db *gorm.DB
}

func NewReminder(db *gorm.DB) *Reminder {
	return &Reminder{
		db: db,
	}
}

// Register 注册到调度器
func (r *Reminder) Register(scheduler *schedule.Scheduler, config schedule.ScheduledConfig) {
	scheduler.AddScheduledTask("overdue-reminder", config, r.Sweep)
}

// Sweep 扫描一次
func (r *Reminder) Sweep() {
	ctx := context.Background()
	tasks, err := r.overdueTasks(ctx, time.Now().UTC())
	if err != nil {
		logs.CtxErrorf(ctx, "扫描过期任务失败: %v", err)
		return
	}
	if len(tasks) == 0 {
		return
	}
	for _, task := range tasks {
		logs.CtxWarnf(ctx, "任务已过期未完成, id:%s, title:%s, dueDate:%v, status:%s",
			task.ID, task.Title, task.DueDate, task.Status)
	}
	logs.CtxInfof(ctx, "过期任务扫描完成, 过期数量:%d", len(tasks))
}

// overdueTasks 查询已过期且未完成的任务
func (r *Reminder) overdueTasks(ctx context.Context, now time.Time) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", now, entity.StatusCompleted).
		Order("due_date asc").
		Find(&tasks).
		Error
	return tasks, err
}
