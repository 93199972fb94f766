package entity

import (
	"time"

	"gorm.io/gorm"

	"github.com/hatcher/taskboard/pkg/util"
)

// TaskBatch 一次性创建的任务组，成员创建后不可变
type TaskBatch struct {
	ID        string    `json:"id" gorm:"column:id;type:varchar(36);primaryKey"`
	SessionID *string   `json:"sessionId" gorm:"column:session_id;type:varchar(36);index"`
	Reason    string    `json:"reason" gorm:"column:reason;type:varchar(1000);"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:dateTime;autoCreateTime;not null"`
	Tasks     []Task    `json:"tasks" gorm:"foreignKey:BatchID;references:ID"`
}

func (b *TaskBatch) TableName() string {
	return "task_batches"
}

func (b *TaskBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = util.NewUUID()
	}
	return nil
}
