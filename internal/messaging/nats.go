package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"socialwall/internal/config"
)

const (
	SubjectPostCreated       = "posts.created"
	SubjectFollowCreated     = "follows.created"
	SubjectFollowDeleted     = "follows.deleted"
	SubjectDirectMessageSent = "directmessages.sent"
)

// Publisher emits domain events after a write has been committed.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

type conn interface {
	Publish(subject string, data []byte) error
	IsConnected() bool
	Drain() error
}

type NATSPublisher struct {
	nc     conn
	prefix string
	logger *slog.Logger
}

// ConnectNATS dials the configured server. An empty URL yields a publisher that drops events.
func ConnectNATS(cfg *config.Config, logger *slog.Logger) (Publisher, error) {
	if cfg.NATS.URL == "" {
		logger.Info("NATS_URL not set, domain events are disabled")
		return NoopPublisher{}, nil
	}

	nc, err := nats.Connect(cfg.NATS.URL,
		nats.Name("socialwall-api"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("connected to NATS", "url", cfg.NATS.URL)
	return NewNATSPublisher(nc, cfg.NATS.SubjectPrefix, logger), nil
}

func NewNATSPublisher(nc conn, prefix string, logger *slog.Logger) *NATSPublisher {
	return &NATSPublisher{nc: nc, prefix: prefix, logger: logger}
}

func (p *NATSPublisher) subject(name string) string {
	if p.prefix == "" {
		return name
	}
	return p.prefix + "." + name
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", subject, err)
	}

	if err := p.nc.Publish(p.subject(subject), data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	p.logger.Debug("event published", "subject", p.subject(subject))
	return nil
}

func (p *NATSPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("failed to drain NATS connection", "error", err)
	}
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

func (NoopPublisher) Close() {}
