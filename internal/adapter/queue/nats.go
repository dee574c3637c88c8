package queue

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/voxretail/assistant/pkg/config"
)

const (
	defaultMaxReconnects = 10
	defaultReconnectWait = 2 * time.Second
	defaultConnectWait   = 5 * time.Second
)

// NATSQueue publishes voice interaction events. Delivery is best effort:
// a lost event costs one analytics row, never a webhook response, so the
// connection reconnects in the background instead of failing requests.
type NATSQueue struct {
	conn *nats.Conn
	log  *zap.Logger
}

func NewNATSQueue(cfg config.NATSConfig, log *zap.Logger) (MessageQueue, error) {
	nc, err := nats.Connect(cfg.URL, connectOptions(cfg, log)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Info("Successfully connected to NATS", zap.String("url", cfg.URL))
	return &NATSQueue{
		conn: nc,
		log:  log,
	}, nil
}

// connectOptions maps the NATS config onto client options, filling in
// defaults for unset fields.
func connectOptions(cfg config.NATSConfig, log *zap.Logger) []nats.Option {
	maxReconnects := cfg.MaxReconnects
	if maxReconnects <= 0 {
		maxReconnects = defaultMaxReconnects
	}
	reconnectWait := cfg.ReconnectWait
	if reconnectWait <= 0 {
		reconnectWait = defaultReconnectWait
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultConnectWait
	}

	return []nats.Option{
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.Timeout(timeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("NATS connection lost, interaction events on hold", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS connection restored", zap.String("url", nc.ConnectedUrl()))
		}),
	}
}

func (q *NATSQueue) Publish(subject string, data []byte) error {
	return q.conn.Publish(subject, data)
}

// Close drains the connection so interaction events published just
// before shutdown still reach the broker.
func (q *NATSQueue) Close() error {
	if err := q.conn.Drain(); err != nil {
		q.conn.Close()
		return err
	}
	return nil
}
