package schedule

import (
	"context"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hatcher/taskboard/pkg/logs"
	"github.com/hatcher/taskboard/pkg/safego"
)

type Scheduler struct {
	quit chan struct{}
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		quit: make(chan struct{}),
	}
}

type ScheduledConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled" yaml:"enabled"`
	Type    string `json:"type" mapstructure:"type" yaml:"type"`
	Value   string `json:"value" mapstructure:"value" yaml:"value"`
}

// AddScheduledTask 添加定时任务，type支持 cron 或 fixed_delay（秒）
func (worker *Scheduler) AddScheduledTask(name string, config ScheduledConfig, method func()) {
	if !config.Enabled {
		logs.Infof("%s 定时任务未启用", name)
		return
	}
	if config.Value == "" {
		logs.Errorf("%s 定时任务未配置执行频率，scheduleType:%s", name, config.Type)
		return
	}
	safeMethod := func() {
		defer safego.Recovery(context.Background())
		method()
	}
	switch config.Type {
	case "cron":
		worker.AddCronTask(config.Value, safeMethod)
	case "fixed_delay":
		interval, err := strconv.ParseInt(config.Value, 10, 64)
		if err != nil {
			logs.Errorf("%s 定时任务执行频率错误，仅可为数字，scheduleType:%s, scheduleValue:%s", name, config.Type, config.Value)
			return
		}
		worker.AddFixDelayTask(interval, safeMethod)
	default:
		logs.Errorf("%s 定时任务类型错误，scheduleType: %s , 仅支持（fixed_delay 或者 cron）", name, config.Type)
	}
}

// AddCronTask 添加cron任务
func (worker *Scheduler) AddCronTask(cronString string, method func()) {
	cronTask := cron.New(cron.WithSeconds())
	_, err := cronTask.AddFunc(cronString, method)
	if err != nil {
		logs.Errorf("定时任务Cron表达式错误: %v", err)
		return
	}
	go func() {
		cronTask.Start()
		defer cronTask.Stop()
		<-worker.quit
	}()
}

// AddFixDelayTask 添加固定延迟任务
func (worker *Scheduler) AddFixDelayTask(interval int64, method func()) {
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-worker.quit:
				return
			case <-ticker.C:
				method()
			}
		}
	}()
}

// Stop 停止所有定时任务
func (worker *Scheduler) Stop() {
	close(worker.quit)
}
