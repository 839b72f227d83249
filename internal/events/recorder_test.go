package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primedex/internal/core/pubsub"
	"primedex/internal/core/pubsub/memory"
)

func TestRecorder_PublishesEvent(t *testing.T) {
	pub := memory.NewPublisher(8, pubsub.PublisherOptions{SubjectPrefix: "primedex"})
	rec := NewRecorder(pub)

	ev := NewSearchEvent(KindClosest, 100, 2, 2, 5*time.Millisecond)
	rec.Record(ev)

	require.Eventually(t, func() bool {
		return len(pub.Recent(1)) == 1
	}, time.Second, 10*time.Millisecond)

	entry := pub.Recent(1)[0]
	assert.Equal(t, "primedex.queries.closest", entry.Subject)

	var got SearchEvent
	require.NoError(t, json.Unmarshal(entry.Data, &got))
	assert.Equal(t, ev, got)
}

func TestRecorder_NilPublisherDrops(t *testing.T) {
	rec := NewRecorder(nil)
	assert.NotPanics(t, func() {
		rec.Record(NewSearchEvent(KindCheck, 7, 0, 1, 0))
	})
}

func TestKind(t *testing.T) {
	assert.True(t, KindCheck.IsValid())
	assert.True(t, KindPlate.IsValid())
	assert.False(t, Kind("bogus").IsValid())
	assert.Equal(t, "queries.check", KindCheck.Subject())
}

func TestNewSearchEvent(t *testing.T) {
	ev := NewSearchEvent(KindCheck, 97, 0, 1, 1500*time.Microsecond)
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, uint64(97), ev.Number)
	assert.Equal(t, int64(1), ev.ElapsedMS)
	assert.NotZero(t, ev.Timestamp)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Backend = "kafka"
	assert.Error(t, cfg.Validate())

	cfg.Backend = BackendNATS
	cfg.NATSURL = ""
	assert.Error(t, cfg.Validate())
}
