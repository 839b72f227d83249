package events

import (
	"fmt"

	natsio "github.com/nats-io/nats.go"

	"primedex/internal/core/pubsub"
	"primedex/internal/core/pubsub/memory"
	"primedex/internal/core/pubsub/nats"
)

// OpenPublisher constructs the configured event publisher. The second
// return value is the owning NATS connection, nil for the memory
// backend; the caller closes it at shutdown.
func OpenPublisher(cfg Config) (pubsub.Publisher, *natsio.Conn, error) {
	opts := pubsub.PublisherOptions{
		StreamName:    cfg.Stream,
		SubjectPrefix: cfg.SubjectPrefix,
	}

	switch cfg.Backend {
	case BackendNATS:
		nc, js, err := nats.Connect(cfg.NATSURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect nats: %w", err)
		}
		pub, err := nats.NewPublisher(js, opts)
		if err != nil {
			nc.Close()
			return nil, nil, err
		}
		return pub, nc, nil

	case BackendMemory:
		return memory.NewPublisher(cfg.Capacity, opts), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}
}
