package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gms-admin/internal/pkg/metrics"
)

const connectTimeout = 5 * time.Second

// Config Redis 连接配置
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Client 带指标上报的 Redis 客户端封装
type Client struct {
	*redis.Client
	service string
}

// NewClient 创建客户端并验证连通性
func NewClient(cfg Config, service string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	if service == "" {
		service = metrics.GetServiceName()
	}

	return &Client{Client: rdb, service: service}, nil
}

// observe 上报单次操作的耗时与结果，redis.Nil 单独计数
func (c *Client) observe(op string, start time.Time, err error) {
	metrics.DefaultResourceMetrics.RecordRedisOperation(op, err == nil, time.Since(start), c.service)
	switch {
	case err == redis.Nil:
		metrics.DefaultResourceMetrics.RecordRedisError("nil", c.service)
	case err != nil:
		metrics.DefaultResourceMetrics.RecordRedisError("operation_error", c.service)
	}
}

// SetWithTTL 写入键值并设置过期时间
func (c *Client) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	start := time.Now()
	err := c.Set(ctx, key, value, ttl).Err()
	c.observe("SET", start, err)
	return err
}

// GetString 读取字符串值，键不存在时返回 redis.Nil
func (c *Client) GetString(ctx context.Context, key string) (string, error) {
	start := time.Now()
	result, err := c.Get(ctx, key).Result()
	c.observe("GET", start, err)
	return result, err
}

// DeleteKey 删除一个或多个键
func (c *Client) DeleteKey(ctx context.Context, keys ...string) error {
	start := time.Now()
	err := c.Del(ctx, keys...).Err()
	c.observe("DEL", start, err)
	return err
}

// IsNil 判断错误是否为 key 不存在
func IsNil(err error) bool {
	return err == redis.Nil
}
