// Package mongo implements the catalog over a MongoDB collection of
// precomputed primes.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the collection holding the demo primes.
const CollectionName = "primes"

// primeDoc is the stored document shape.
type primeDoc struct {
	Value int64 `bson:"value"`
}

// Store implements the catalog on MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewStore connects to MongoDB and verifies the connection with a
// ping before returning.
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	clientOpts := options.Client().ApplyURI(uri)
	if clientOpts.ConnectTimeout == nil {
		clientOpts.SetConnectTimeout(10 * time.Second)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		client: client,
		coll:   client.Database(dbName).Collection(CollectionName),
	}, nil
}

// Count returns the number of primes in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.coll.EstimatedDocumentCount(ctx)
}

// Sample returns up to n random primes using a $sample aggregation.
func (s *Store) Sample(ctx context.Context, n int) ([]uint64, error) {
	if n <= 0 {
		return nil, nil
	}

	cursor, err := s.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("sample primes: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []primeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode primes: %w", err)
	}

	out := make([]uint64, 0, len(docs))
	for _, d := range docs {
		if d.Value > 0 {
			out = append(out, uint64(d.Value))
		}
	}
	return out, nil
}

// Seed inserts primes into the collection, skipping values already
// present. Intended for bootstrapping a fresh catalog.
func (s *Store) Seed(ctx context.Context, primes []uint64) error {
	for _, p := range primes {
		filter := bson.D{{Key: "value", Value: int64(p)}}
		update := bson.D{{Key: "$setOnInsert", Value: primeDoc{Value: int64(p)}}}
		if _, err := s.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed prime %d: %w", p, err)
		}
	}
	return nil
}

// Backend names the implementation.
func (s *Store) Backend() string {
	return "mongo"
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
