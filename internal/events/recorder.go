package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"primedex/internal/core/pubsub"
)

// publishTimeout bounds one fire-and-forget publish so a stalled
// broker cannot pile up goroutines indefinitely.
const publishTimeout = 5 * time.Second

// Recorder publishes search events. Failures are logged and swallowed:
// event delivery is best effort by design.
type Recorder struct {
	pub pubsub.Publisher
}

// NewRecorder wraps a publisher. A nil publisher yields a recorder
// that drops everything, which keeps call sites unconditional.
func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub}
}

// Record publishes the event without blocking the caller.
func (r *Recorder) Record(ev SearchEvent) {
	if r == nil || r.pub == nil {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		slog.Warn("Failed to encode search event", "kind", ev.Kind, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := r.pub.Publish(ctx, ev.Kind.Subject(), data); err != nil {
			slog.Warn("Failed to publish search event", "kind", ev.Kind, "error", err)
		}
	}()
}
