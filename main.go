package main

import (
	"flag"
	"time"

	"github.com/hatcher/taskboard/pkg/cfg"
	"github.com/hatcher/taskboard/pkg/hertzx"
	"github.com/hatcher/taskboard/pkg/logs"
	"github.com/hatcher/taskboard/pkg/ormx"
	"github.com/hatcher/taskboard/pkg/redisx"
	"github.com/hatcher/taskboard/pkg/schedule"
	"github.com/hatcher/taskboard/todo/cache"
	"github.com/hatcher/taskboard/todo/entity"
	"github.com/hatcher/taskboard/todo/handler"
	"github.com/hatcher/taskboard/todo/job"
	"github.com/hatcher/taskboard/todo/service"
)

type Config struct {
	Web             hertzx.WebConfig         `mapstructure:"web"`
	DB              ormx.DBConfig            `mapstructure:"db"`
	Redis           redisx.RedisConfig       `mapstructure:"redis"`
	Log             logs.LogConfig           `mapstructure:"log"`
	Reminder        schedule.ScheduledConfig `mapstructure:"reminder"`
	CacheTTLSeconds int                      `mapstructure:"cache-ttl-seconds"`
}

func main() {
	configDir := flag.String("conf", "conf", "配置目录")
	flag.Parse()

	var c Config
	if err := cfg.LoadConfig(*configDir, "config", "yaml", &c); err != nil {
		logs.Fatalf("加载配置失败: %v", err)
	}
	if err := logs.InitLogger(c.Log, "taskboard.log"); err != nil {
		logs.Fatalf("初始化日志失败: %v", err)
	}

	db, err := ormx.NewDBClient(c.DB)
	if err != nil {
		logs.Fatalf("初始化数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&entity.TaskBatch{}, &entity.Task{}); err != nil {
		logs.Fatalf("同步表结构失败: %v", err)
	}

	rdb, err := redisx.NewRedis(c.Redis)
	if err != nil {
		logs.Fatalf("初始化redis失败: %v", err)
	}

	taskCache := cache.NewTaskCache(rdb, time.Duration(c.CacheTTLSeconds)*time.Second)
	taskService := service.NewTaskService(db, taskCache)
	batchService := service.NewBatchService(db)

	scheduler := schedule.NewScheduler()
	defer scheduler.Stop()
	job.NewReminder(db).Register(scheduler, c.Reminder)

	c.Web.Prepare()
	engine := hertzx.WebEngine(c.Web)
	handler.New(taskService, batchService, db, rdb).RegisterRoutes(engine.Engine)

	logs.Infof("taskboard 启动, 监听 %s:%d", c.Web.Host, c.Web.Port)
	engine.Spin()
}
