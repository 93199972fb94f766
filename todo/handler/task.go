package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/hatcher/taskboard/pkg/hertzx"
	"github.com/hatcher/taskboard/pkg/logs"
	"github.com/hatcher/taskboard/pkg/resp"
	"github.com/hatcher/taskboard/pkg/util"
	"github.com/hatcher/taskboard/todo/service"
)

// CreateTask 创建任务
func (h *Handler) CreateTask(ctx context.Context, c *app.RequestContext) {
	var req service.TaskCreate
	if err := c.BindJSON(&req); err != nil {
		hertzx.Badf(c, "请求体解析失败: %v", err)
		return
	}
	task, err := h.tasks.Create(ctx, req)
	if err != nil {
		hertzx.Bad(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp.Success(task))
}

// ListTasks 分页查询任务列表
func (h *Handler) ListTasks(ctx context.Context, c *app.RequestContext) {
	page, err := hertzx.DefaultQueryInt(c, "page", 1)
	if err != nil {
		hertzx.Bad(c, "参数 page 不合法")
		return
	}
	q := service.TaskListQuery{
		PageNo:    page,
		Status:    c.DefaultQuery("status", ""),
		SessionID: c.DefaultQuery("sessionId", ""),
		SortBy:    c.DefaultQuery("sortBy", "updated_at"),
		Order:     c.DefaultQuery("order", "desc"),
	}
	tasks, total, err := h.tasks.List(ctx, q)
	if err != nil {
		hertzx.Bad(c, err.Error())
		return
	}
	hertzx.Data(c, resp.NewPageEntity(total, page, service.TasksPerPage, tasks))
}

// GetTask 根据ID获取任务
func (h *Handler) GetTask(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if !util.IsUUID(id) {
		hertzx.NotFoundf(c, "任务不存在, id:%s", id)
		return
	}
	task, err := h.tasks.GetByID(ctx, id)
	if err != nil {
		logs.CtxErrorf(ctx, "获取任务失败, id:%s, 错误:%v", id, err)
		hertzx.Errorf(c, "获取任务失败, id:%s", id)
		return
	}
	if task == nil {
		hertzx.NotFoundf(c, "任务不存在, id:%s", id)
		return
	}
	hertzx.Data(c, task)
}

// UpdateTask 更新任务
func (h *Handler) UpdateTask(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if !util.IsUUID(id) {
		hertzx.NotFoundf(c, "任务不存在, id:%s", id)
		return
	}
	var req service.TaskUpdate
	if err := c.BindJSON(&req); err != nil {
		hertzx.Badf(c, "请求体解析失败: %v", err)
		return
	}
	task, err := h.tasks.Update(ctx, id, req)
	if err != nil {
		hertzx.Bad(c, err.Error())
		return
	}
	if task == nil {
		hertzx.NotFoundf(c, "任务不存在, id:%s", id)
		return
	}
	hertzx.Data(c, task)
}

// DeleteTask 删除任务
func (h *Handler) DeleteTask(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if !util.IsUUID(id) {
		hertzx.NotFoundf(c, "任务不存在, id:%s", id)
		return
	}
	deleted, err := h.tasks.Delete(ctx, id)
	if err != nil {
		logs.CtxErrorf(ctx, "删除任务失败, id:%s, 错误:%v", id, err)
		hertzx.Errorf(c, "删除任务失败, id:%s", id)
		return
	}
	if !deleted {
		hertzx.NotFoundf(c, "任务不存在, id:%s", id)
		return
	}
	hertzx.Msg(c, "OK")
}

// BulkUpdateTasks 批量更新任务。请求体缺少tasks键为结构性错误返回400，
// 其余情况整体返回200，逐项结果见data.results。
func (h *Handler) BulkUpdateTasks(ctx context.Context, c *app.RequestContext) {
	var req service.BulkUpdateRequest
	if err := c.BindJSON(&req); err != nil {
		hertzx.Badf(c, "请求体解析失败: %v", err)
		return
	}
	if req.Tasks == nil {
		hertzx.Bad(c, "请求体缺少 tasks 字段")
		return
	}
	result := h.tasks.BulkUpdate(ctx, req)
	hertzx.Data(c, result)
}

// BulkDeleteTasks 批量删除任务，重复ID只处理一次
func (h *Handler) BulkDeleteTasks(ctx context.Context, c *app.RequestContext) {
	var req service.BulkDeleteRequest
	if err := c.BindJSON(&req); err != nil {
		hertzx.Badf(c, "请求体解析失败: %v", err)
		return
	}
	if req.IDs == nil {
		hertzx.Bad(c, "请求体缺少 ids 字段")
		return
	}
	result := h.tasks.BulkDelete(ctx, req.IDs)
	hertzx.Data(c, result)
}
