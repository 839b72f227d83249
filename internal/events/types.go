// Package events defines the query event schema published by the
// gateway. Events are an observability side channel; emitting them
// never affects a request's outcome.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies what a search event describes.
type Kind string

const (
	KindCheck   Kind = "check"
	KindClosest Kind = "closest"
	KindPlate   Kind = "plate"
)

// IsValid checks if the kind is a known valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindCheck, KindClosest, KindPlate:
		return true
	default:
		return false
	}
}

// Subject returns the publish subject for this kind.
func (k Kind) Subject() string {
	return "queries." + string(k)
}

// SearchEvent records one completed query.
type SearchEvent struct {
	EventID   string `json:"eventId"`
	Kind      Kind   `json:"kind"`
	Number    uint64 `json:"number"`
	Count     int    `json:"count,omitempty"`
	Results   int    `json:"results"`
	ElapsedMS int64  `json:"elapsedMs"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// NewSearchEvent creates an event stamped with a fresh ID and the
// current time.
func NewSearchEvent(kind Kind, number uint64, count, results int, elapsed time.Duration) SearchEvent {
	return SearchEvent{
		EventID:   uuid.New().String(),
		Kind:      kind,
		Number:    number,
		Count:     count,
		Results:   results,
		ElapsedMS: elapsed.Milliseconds(),
		Timestamp: time.Now().UnixMilli(),
	}
}
