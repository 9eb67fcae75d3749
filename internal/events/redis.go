package events

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	"github.com/BruksfildServices01/haircut-scheduler/internal/config"
)

// RedisPublisher publishes every event on one pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     *zap.Logger
}

func NewRedisPublisher(ctx context.Context, cfg *config.Config, log *zap.Logger) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}

	log.Info("redis event publisher ready",
		zap.String("addr", cfg.Redis.Addr),
		zap.String("channel", cfg.Redis.Channel),
	)

	return &RedisPublisher{
		client:  client,
		channel: cfg.Redis.Channel,
		log:     log,
	}, nil
}

func (p *RedisPublisher) Handle(ctx context.Context, ev audit.Event) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", RoutingKey(ev), err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
