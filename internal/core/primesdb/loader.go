// Package primesdb loads the bit-packed primality index consumed by
// the prime service. Resolution order is local cache file, then remote
// fetch (cached on success), then nothing — in which case every query
// falls back to trial division.
package primesdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"primedex/internal/core/prime"
)

// Origin identifies where the current buffer came from.
type Origin string

const (
	OriginNone   Origin = "none"
	OriginCache  Origin = "cache"
	OriginRemote Origin = "remote"
)

// Stats describes the currently published buffer.
type Stats struct {
	Loaded bool   `json:"loaded"`
	Size   int    `json:"size"`
	Origin Origin `json:"origin"`
}

// snapshot is published atomically so readers never observe a
// partially written buffer.
type snapshot struct {
	data   []byte
	origin Origin
}

// Loader resolves and owns the index buffer. It implements
// prime.Source; the buffer is immutable once published and shared by
// all concurrent queries.
type Loader struct {
	cfg     Config
	client  *http.Client
	current atomic.Pointer[snapshot]
}

var _ prime.Source = (*Loader)(nil)

// New creates a Loader. No I/O happens until Load.
func New(cfg Config) *Loader {
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// Load resolves the index buffer once, at startup. A failed resolution
// is returned for logging but is not fatal to the caller: the Loader
// stays in the "absent" state and queries degrade to trial division.
func (l *Loader) Load(ctx context.Context) error {
	if !l.cfg.Enabled {
		slog.Info("Index disabled, primality queries will use trial division")
		return nil
	}

	if data, err := os.ReadFile(l.cfg.CacheFile); err == nil {
		if err := Verify(data); err != nil {
			slog.Warn("Cached index failed self-check, refetching", "file", l.cfg.CacheFile, "error", err)
		} else {
			l.publish(data, OriginCache)
			slog.Info("Index loaded from cache", "file", l.cfg.CacheFile, "size", len(data))
			return nil
		}
	}

	data, err := l.fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch index: %w", err)
	}
	if err := Verify(data); err != nil {
		return fmt.Errorf("remote index rejected: %w", err)
	}

	// Cache write is best effort; a read-only filesystem just means a
	// refetch on next start.
	if err := l.writeCache(data); err != nil {
		slog.Warn("Failed to write index cache", "file", l.cfg.CacheFile, "error", err)
	}

	l.publish(data, OriginRemote)
	slog.Info("Index downloaded", "url", l.cfg.URL, "size", len(data))
	return nil
}

// Buffer implements prime.Source.
func (l *Loader) Buffer() ([]byte, bool) {
	snap := l.current.Load()
	if snap == nil {
		return nil, false
	}
	return snap.data, true
}

// Stats reports the state of the published buffer.
func (l *Loader) Stats() Stats {
	snap := l.current.Load()
	if snap == nil {
		return Stats{Origin: OriginNone}
	}
	return Stats{Loaded: true, Size: len(snap.data), Origin: snap.origin}
}

func (l *Loader) publish(data []byte, origin Origin) {
	l.current.Store(&snapshot{data: data, origin: origin})
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, l.cfg.URL)
	}
	return io.ReadAll(resp.Body)
}

func (l *Loader) writeCache(data []byte) error {
	if l.cfg.CacheFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(l.cfg.CacheFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(l.cfg.CacheFile, data, 0644)
}

// Verify spot-checks known primality facts against the buffer before
// it is trusted. The address formula was reverse engineered from the
// reference encoding; a format drift would otherwise produce silently
// wrong answers instead of a detectable failure.
func Verify(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("index is empty")
	}

	ix := prime.NewPackedIndex(data)
	checks := []struct {
		n    uint64
		want bool
	}{
		{11, true}, {13, true}, {17, true}, {19, true},
		{21, false}, {23, true}, {27, false}, {29, true},
		{31, true}, {33, false}, {49, false}, {97, true},
	}
	for _, c := range checks {
		got, ok := ix.Lookup(c.n)
		if !ok {
			return fmt.Errorf("index too small to cover %d (%d bytes)", c.n, len(data))
		}
		if got != c.want {
			return fmt.Errorf("self-check failed at %d: index says prime=%v, oracle says %v", c.n, got, c.want)
		}
	}
	return nil
}
