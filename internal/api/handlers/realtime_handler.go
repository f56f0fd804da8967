package handlers

import (
	"bufio"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/realtime"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const defaultHeartbeat = 15 * time.Second

// subscribableTables are the tables the dashboard may watch. Sessions are
// delivered only through the session stream.
var subscribableTables = map[string]struct{}{
	"clients":          {},
	"campaigns":        {},
	"videos":           {},
	"relevance_scores": {},
	"countries":        {},
	"channels":         {},
	"objectives":       {},
}

type RealtimeHandler struct {
	hub       *realtime.Hub
	logger    *zap.Logger
	heartbeat time.Duration
}

func NewRealtimeHandler(hub *realtime.Hub, logger *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, logger: logger, heartbeat: defaultHeartbeat}
}

func setStreamHeaders(c *fiber.Ctx) {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")
}

// Changes streams change events for the tables named in ?table=, or all of
// them when none are given.
func (h *RealtimeHandler) Changes(c *fiber.Ctx) error {
	var tables []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("table") {
		table := string(raw)
		if _, ok := subscribableTables[table]; !ok {
			return apperrors.Validation("table", "unknown table "+table)
		}
		tables = append(tables, table)
	}
	if len(tables) == 0 {
		for table := range subscribableTables {
			tables = append(tables, table)
		}
	}

	sub := h.hub.Subscribe(tables...)
	userID := GetUserID(c)
	heartbeat := h.heartbeat
	logger := h.logger

	setStreamHeaders(c)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(sub)
		logger.Debug("Change stream opened", zap.String("user_id", userID), zap.Strings("tables", tables))

		err := stream(w, sub, heartbeat,
			func(w *bufio.Writer, ev realtime.Event) (bool, error) {
				return false, realtime.WriteEvent(w, "change", ev)
			},
			func(w *bufio.Writer) (bool, error) {
				return false, realtime.WriteHeartbeat(w)
			},
		)
		logger.Debug("Change stream closed", zap.String("user_id", userID), zap.Error(err))
	}))
	return nil
}

// stream pumps sub into w until the subscription closes, a write fails or a
// callback asks to stop.
func stream(
	w *bufio.Writer,
	sub *realtime.Subscription,
	heartbeat time.Duration,
	onEvent func(*bufio.Writer, realtime.Event) (bool, error),
	onTick func(*bufio.Writer) (bool, error)) error {
	if err := realtime.WriteHeartbeat(w); err != nil {
		return err
	}

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return nil
			}
			stop, err := onEvent(w, ev)
			if err != nil || stop {
				return err
			}
		case <-ticker.C:
			stop, err := onTick(w)
			if err != nil || stop {
				return err
			}
		}
	}
}
