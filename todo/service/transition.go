package service

import (
	"time"

	"github.com/hatcher/taskboard/todo/entity"
)

// ApplyStatusTransition 状态流转规则：
// 非completed -> completed 时打上完成时间；completed -> 其他状态时清空。
// 纯函数，返回流转后的completed_at。
func ApplyStatusTransition(oldStatus, newStatus entity.TaskStatus, completedAt *time.Time, now time.Time) *time.Time {
	if newStatus == entity.StatusCompleted && oldStatus != entity.StatusCompleted {
		return &now
	}
	if newStatus != entity.StatusCompleted && completedAt != nil {
		return nil
	}
	return completedAt
}
