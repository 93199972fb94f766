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

// CreateBatch 创建批次及其任务，原子创建
func (h *Handler) CreateBatch(ctx context.Context, c *app.RequestContext) {
	var req service.BatchCreate
	if err := c.BindJSON(&req); err != nil {
		hertzx.Badf(c, "请求体解析失败: %v", err)
		return
	}
	batch, err := h.batches.Create(ctx, req)
	if err != nil {
		hertzx.Bad(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp.Success(batch))
}

// ListBatches 分页查询批次列表
func (h *Handler) ListBatches(ctx context.Context, c *app.RequestContext) {
	page, err := hertzx.DefaultQueryInt(c, "page", 1)
	if err != nil {
		hertzx.Bad(c, "参数 page 不合法")
		return
	}
	q := service.BatchListQuery{
		PageNo:    page,
		SessionID: c.DefaultQuery("sessionId", ""),
	}
	batches, total, err := h.batches.List(ctx, q)
	if err != nil {
		logs.CtxErrorf(ctx, "获取批次列表失败: %v", err)
		hertzx.Error(c, "获取批次列表失败")
		return
	}
	hertzx.Data(c, resp.NewPageEntity(total, page, service.BatchesPerPage, batches))
}

// GetLatestBatch 获取最近创建的批次
func (h *Handler) GetLatestBatch(ctx context.Context, c *app.RequestContext) {
	sessionID := c.DefaultQuery("sessionId", "")
	batch, err := h.batches.GetLatest(ctx, sessionID)
	if err != nil {
		logs.CtxErrorf(ctx, "获取最新批次失败: %v", err)
		hertzx.Error(c, "获取最新批次失败")
		return
	}
	if batch == nil {
		hertzx.NotFound(c, "暂无批次")
		return
	}
	hertzx.Data(c, batch)
}

// GetBatch 根据ID获取批次及其任务
func (h *Handler) GetBatch(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	if !util.IsUUID(id) {
		hertzx.NotFoundf(c, "批次不存在, id:%s", id)
		return
	}
	batch, err := h.batches.GetByID(ctx, id)
	if err != nil {
		logs.CtxErrorf(ctx, "获取批次失败, id:%s, 错误:%v", id, err)
		hertzx.Errorf(c, "获取批次失败, id:%s", id)
		return
	}
	if batch == nil {
		hertzx.NotFoundf(c, "批次不存在, id:%s", id)
		return
	}
	hertzx.Data(c, batch)
}
