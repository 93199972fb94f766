package service

import (
	"time"

	"github.com/hatcher/taskboard/todo/entity"
)

type TaskCreate struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	SessionID   *string    `json:"sessionId"`
}

// TaskUpdate 部分更新，nil表示不修改
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type TaskListQuery struct {
	PageNo    int
	Status    string
	SessionID string
	SortBy    string
	Order     string
}

type BatchCreate struct {
	SessionID *string      `json:"sessionId"`
	Reason    string       `json:"reason"`
	Tasks     []TaskCreate `json:"tasks"`
}

type BatchListQuery struct {
	PageNo    int
	SessionID string
}

type BulkUpdateItem struct {
	ID string `json:"id"`
	TaskUpdate
}

type BulkUpdateRequest struct {
	Tasks []BulkUpdateItem `json:"tasks"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type ErrKind string

const (
	ErrKindValidation  ErrKind = "ValidationError"
	ErrKindNotFound    ErrKind = "NotFound"
	ErrKindPersistence ErrKind = "PersistenceError"
)

// ItemOutcome 批量操作的单项结果，每个输入项恰好对应一条
type ItemOutcome struct {
	ID      string       `json:"id"`
	OK      bool         `json:"ok"`
	Task    *entity.Task `json:"task,omitempty"`
	ErrKind ErrKind      `json:"errorKind,omitempty"`
	Message string       `json:"message,omitempty"`
}

func successOutcome(task *entity.Task) ItemOutcome {
	return ItemOutcome{
		ID:   task.ID,
		OK:   true,
		Task: task,
	}
}

func failedOutcome(id string, kind ErrKind, message string) ItemOutcome {
	return ItemOutcome{
		ID:      id,
		OK:      false,
		ErrKind: kind,
		Message: message,
	}
}

type BulkResult struct {
	Results []ItemOutcome `json:"results"`
}

// Succeeded 成功项数量
func (r BulkResult) Succeeded() int {
	n := 0
	for _, o := range r.Results {
		if o.OK {
			n++
		}
	}
	return n
}
