package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// ChangeChannel is the NOTIFY channel the table triggers write to.
const ChangeChannel = "table_changes"

func ParsePayload(payload string) (Event, error) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return Event{}, fmt.Errorf("decoding change payload: %w", err)
	}
	if ev.Table == "" || ev.Type == "" {
		return Event{}, fmt.Errorf("change payload missing table or type: %q", payload)
	}
	return ev, nil
}

// Listener relays Postgres notifications on ChangeChannel to a hub.
type Listener struct {
	listener *pq.Listener
	hub      Publisher
	logger   *zap.Logger
}

func NewListener(connStr string, hub Publisher, logger *zap.Logger) (*Listener, error) {
	report := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("Change listener connection event", zap.Int("event", int(ev)), zap.Error(err))
		}
	}

	l := pq.NewListener(connStr, 2*time.Second, time.Minute, report)
	if err := l.Listen(ChangeChannel); err != nil {
		l.Close()
		return nil, fmt.Errorf("listening on %s: %w", ChangeChannel, err)
	}

	return &Listener{listener: l, hub: hub, logger: logger}, nil
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) {
	l.logger.Info("Change listener started", zap.String("channel", ChangeChannel))
	defer l.listener.Close()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Change listener stopped")
			return
		case n := <-l.listener.Notify:
			// pq sends nil after re-establishing a dropped connection.
			if n == nil {
				l.logger.Info("Change listener reconnected")
				continue
			}
			l.handle(n)
		case <-time.After(90 * time.Second):
			if err := l.listener.Ping(); err != nil {
				l.logger.Warn("Change listener ping failed", zap.Error(err))
			}
		}
	}
}

func (l *Listener) handle(n *pq.Notification) {
	ev, err := ParsePayload(n.Extra)
	if err != nil {
		l.logger.Warn("Ignoring malformed change notification", zap.Error(err))
		return
	}
	l.hub.Publish(ev)
}
