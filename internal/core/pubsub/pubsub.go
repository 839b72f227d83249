// Package pubsub defines the event publishing abstraction. Backends
// live in subpackages; callers depend only on the Publisher interface.
package pubsub

import "context"

// Publisher delivers serialized events to a subject.
type Publisher interface {
	// Publish sends data to the given subject. The subject is relative;
	// the configured prefix is prepended by the implementation.
	Publish(ctx context.Context, subject string, data []byte) error

	// Close releases the publisher's resources. Publish calls after
	// Close return an error.
	Close() error
}

// PublisherOptions configures a Publisher backend.
type PublisherOptions struct {
	// StreamName names the JetStream stream events are persisted to.
	// Ignored by backends without persistence.
	StreamName string

	// SubjectPrefix is prepended to every publish subject.
	SubjectPrefix string
}

// FullSubject returns subject with the configured prefix applied.
func (o PublisherOptions) FullSubject(subject string) string {
	if o.SubjectPrefix == "" {
		return subject
	}
	return o.SubjectPrefix + "." + subject
}
