package realtime

import (
	"bufio"
	"encoding/json"
	"fmt"
)

// WriteEvent writes one server-sent event and flushes it.
func WriteEvent(w *bufio.Writer, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return err
	}
	return w.Flush()
}

// WriteHeartbeat writes an SSE comment. A failed flush means the client left.
func WriteHeartbeat(w *bufio.Writer) error {
	if _, err := w.WriteString(": ping\n\n"); err != nil {
		return err
	}
	return w.Flush()
}
