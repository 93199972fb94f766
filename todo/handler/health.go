package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/hatcher/taskboard/pkg/hertzx"
	"github.com/hatcher/taskboard/pkg/logs"
)

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Health 健康检查，汇总数据库与redis的连通状态
func (h *Handler) Health(ctx context.Context, c *app.RequestContext) {
	status := HealthStatus{
		Status:   "healthy",
		Database: "healthy",
		Redis:    "healthy",
	}

	sqlDb, err := h.db.DB()
	if err == nil {
		err = sqlDb.PingContext(ctx)
	}
	if err != nil {
		logs.CtxErrorf(ctx, "数据库健康检查失败: %v", err)
		status.Database = "unhealthy"
		status.Status = "degraded"
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			logs.CtxErrorf(ctx, "redis健康检查失败: %v", err)
			status.Redis = "unhealthy"
			status.Status = "degraded"
		}
	} else {
		status.Redis = "disabled"
	}

	hertzx.Data(c, status)
}
