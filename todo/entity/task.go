package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/hatcher/taskboard/pkg/util"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Task struct {
	ID          string        `json:"id" gorm:"column:id;type:varchar(36);primaryKey"`
	SessionID   *string       `json:"sessionId" gorm:"column:session_id;type:varchar(36);index"`
	BatchID     *string       `json:"batchId" gorm:"column:batch_id;type:varchar(36);index"` // 创建后不可变
	Title       string        `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Description *string       `json:"description" gorm:"column:description;type:varchar(1000);"`
	Status      TaskStatus    `json:"status" gorm:"column:status;type:varchar(20);not null;default:pending"`
	Priority    *TaskPriority `json:"priority" gorm:"column:priority;type:varchar(10);"`
	DueDate     *time.Time    `json:"dueDate" gorm:"column:due_date;type:dateTime;"`
	CompletedAt *time.Time    `json:"completedAt" gorm:"column:completed_at;type:dateTime;"` // 仅由状态流转规则写入
	CreatedAt   time.Time     `json:"createdAt" gorm:"column:created_at;type:dateTime;autoCreateTime;not null"`
	UpdatedAt   time.Time     `json:"updatedAt" gorm:"column:updated_at;type:dateTime;autoUpdateTime;not null"`
}

func (t *Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = util.NewUUID()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return nil
}
