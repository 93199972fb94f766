package handler

import (
	"github.com/cloudwego/hertz/pkg/route"
	"gorm.io/gorm"

	"github.com/hatcher/taskboard/pkg/redisx"
	"github.com/hatcher/taskboard/todo/service"
)

type Handler struct {
	tasks   *service.TaskService
	batches *service.BatchService
	db      *gorm.DB
	rdb     redisx.Redis
}

func New(tasks *service.TaskService, batches *service.BatchService, db *gorm.DB, rdb redisx.Redis) *Handler {
	return &Handler{
		tasks:   tasks,
		batches: batches,
		db:      db,
		rdb:     rdb,
	}
}

// RegisterRoutes 注册路由。bulk路由需先于:id路由注册。
func (h *Handler) RegisterRoutes(r *route.Engine) {
	api := r.Group("/api/v1")

	tasks := api.Group("/tasks")
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.PUT("/bulk", h.BulkUpdateTasks)
	tasks.DELETE("/bulk", h.BulkDeleteTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)

	batches := api.Group("/batches")
	batches.POST("", h.CreateBatch)
	batches.GET("", h.ListBatches)
	batches.GET("/latest", h.GetLatestBatch)
	batches.GET("/:id", h.GetBatch)

	r.GET("/health", h.Health)
}
