package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	"github.com/BruksfildServices01/haircut-scheduler/internal/config"
)

const (
	DriverNone  = "none"
	DriverRedis = "redis"
	DriverAMQP  = "amqp"
)

// Publisher forwards audit events to an external bus.
type Publisher interface {
	audit.Sink
	Close() error
}

// New builds the publisher selected by cfg.Events.Driver.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (Publisher, error) {
	switch strings.ToLower(cfg.Events.Driver) {
	case "", DriverNone:
		return Noop{}, nil
	case DriverRedis:
		p, err := NewRedisPublisher(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverAMQP:
		p, err := NewAMQPPublisher(cfg, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}

// RoutingKey is "<entity>.<action>", e.g. "appointment.appointment_created".
func RoutingKey(ev audit.Event) string {
	return ev.Entity + "." + ev.Action
}

func encode(ev audit.Event) ([]byte, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", ev.ID, err)
	}
	return b, nil
}

type Noop struct{}

func (Noop) Handle(context.Context, audit.Event) error { return nil }
func (Noop) Close() error                              { return nil }
