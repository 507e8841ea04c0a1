package publisher

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Metrics is the instrumentation hook the publisher reports into.
type Metrics interface {
	NATSPublishedInc()
	NATSPublishErrInc()
	NATSSetConnected(connected bool)
}

// ChangeEvent notifies subscribers (live map clients, cache warmers)
// that an admin mutation touched an entity.
type ChangeEvent struct {
	Entity string    `json:"entity"`
	ID     string    `json:"id"`
	Action string    `json:"action"`
	At     time.Time `json:"at"`
}

// NATSPublisher emits change events on transit.changes.<entity>.
type NATSPublisher struct {
	nc      *nats.Conn
	logger  *zap.Logger
	metrics Metrics
}

func NewNATSPublisher(url string, logger *zap.Logger, m Metrics) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("transit-backoffice"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSSetConnected(false)
			}
			logger.Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSSetConnected(true)
			}
			logger.Info("NATS reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSSetConnected(false)
			}
			logger.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, err
	}
	if m != nil {
		m.NATSSetConnected(true)
	}
	return &NATSPublisher{nc: nc, logger: logger, metrics: m}, nil
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		p.nc.Close()
	}
}

// PublishChange emits one event. Failures are reported to metrics and
// returned, but callers are expected to log and carry on: a missed
// notification never fails the admin request that caused it.
func (p *NATSPublisher) PublishChange(entity, id, action string) error {
	event := ChangeEvent{
		Entity: entity,
		ID:     id,
		Action: action,
		At:     time.Now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("transit.changes.%s", subjectToken(entity))
	err = p.nc.Publish(subject, b)
	if p.metrics != nil {
		if err != nil {
			p.metrics.NATSPublishErrInc()
		} else {
			p.metrics.NATSPublishedInc()
		}
	}
	return err
}

func subjectToken(s string) string {
	s = strings.TrimSpace(s)
	// NATS token cannot contain spaces, '>', '*', or trailing '.'
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_", "\t", "_")
	s = repl.Replace(s)
	if s == "" {
		s = "_"
	}
	return s
}
