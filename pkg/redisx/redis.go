package redisx

import (
	"context"
	"strings"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Address   string `json:"address" mapstructure:"address" yaml:"address"`
	Username  string `json:"username" mapstructure:"username" yaml:"username"`
	Password  string `json:"password" mapstructure:"password" yaml:"password"`
	DB        int    `json:"db" mapstructure:"db" yaml:"db"`
	RedisType string `json:"redisType" mapstructure:"redis-type" yaml:"redis-type"`
}

type Redis redis.Cmdable

// NewRedis 创建redis客户端，redis-type支持 standalone/cluster/miniredis
func NewRedis(cfg RedisConfig) (Redis, error) {
	var redisClient Redis

	switch cfg.RedisType {
	case "standalone", "":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

	case "cluster":
		redisClient = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    strings.Split(cfg.Address, ","),
			Username: cfg.Username,
			Password: cfg.Password,
		})

	case "miniredis":
		// 内嵌redis，用于本地开发与测试
		s, err := miniredis.Run()
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to initial miniredis")
		}
		redisClient = redis.NewClient(&redis.Options{
			Addr: s.Addr(),
		})

	default:
		return nil, errors.Errorf("failed to initial redisx, redis type is illegal: %s", cfg.RedisType)
	}

	err := redisClient.Ping(context.Background()).Err()
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to ping redis")
	}
	return redisClient, nil
}
