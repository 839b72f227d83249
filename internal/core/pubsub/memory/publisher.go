// Package memory implements pubsub.Publisher without external
// infrastructure. Published messages land in a bounded ring buffer
// that diagnostics endpoints can inspect; nothing is fanned out.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"primedex/internal/core/pubsub"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("memory publisher is closed")

// DefaultCapacity bounds the ring buffer when no capacity is given.
const DefaultCapacity = 128

// Entry is one retained message.
type Entry struct {
	Subject   string    `json:"subject"`
	Data      []byte    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher retains the most recent messages in memory.
type Publisher struct {
	opts pubsub.PublisherOptions

	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	closed  bool
}

var _ pubsub.Publisher = (*Publisher)(nil)

// NewPublisher creates a memory publisher retaining up to capacity
// messages. capacity <= 0 selects DefaultCapacity.
func NewPublisher(capacity int, opts pubsub.PublisherOptions) *Publisher {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Publisher{
		opts:    opts,
		entries: make([]Entry, capacity),
	}
}

// Publish stores the message in the ring buffer.
func (p *Publisher) Publish(_ context.Context, subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	p.entries[p.next] = Entry{
		Subject:   p.opts.FullSubject(subject),
		Data:      buf,
		Timestamp: time.Now(),
	}
	p.next++
	if p.next == len(p.entries) {
		p.next = 0
		p.full = true
	}
	return nil
}

// Recent returns up to n retained messages, newest first.
func (p *Publisher) Recent(n int) []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()

	size := p.next
	if p.full {
		size = len(p.entries)
	}
	if n > size {
		n = size
	}
	if n <= 0 {
		return nil
	}

	out := make([]Entry, 0, n)
	idx := p.next
	for len(out) < n {
		idx--
		if idx < 0 {
			idx = len(p.entries) - 1
		}
		out = append(out, p.entries[idx])
	}
	return out
}

// Close marks the publisher closed; later publishes fail.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
