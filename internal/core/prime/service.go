// Package prime implements primality queries and nearest-prime search
// over a bit-packed precomputed index (PrimesDB format), with trial
// division as the universal fallback.
package prime

// Source supplies the packed index buffer, when one is available.
// Implementations must publish the buffer atomically and never mutate
// it afterwards; concurrent readers share it without locking.
type Source interface {
	// Buffer returns the current index buffer. ok=false means no
	// buffer is available and every lookup falls back to trial
	// division.
	Buffer() (data []byte, ok bool)
}

// Origin identifies which strategy resolved a primality query.
type Origin string

const (
	// OriginIndex means the packed index answered the query.
	OriginIndex Origin = "index"
	// OriginOracle means trial division answered the query, either
	// because no index is loaded or the value is out of its range.
	OriginOracle Origin = "oracle"
)

// Service answers primality and nearest-prime queries. It prefers the
// packed index and falls silently back to trial division; absence of
// index data is never an error (callers see only the Origin).
//
// Service is stateless apart from the Source and safe for concurrent
// use.
type Service struct {
	source Source
}

// NewService creates a Service backed by the given index source.
// A nil source is valid and pins every query to the oracle.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// IsPrime reports whether n is prime, and where the answer came from.
func (s *Service) IsPrime(n uint64) (bool, Origin) {
	if prime, ok := s.lookup(n); ok {
		return prime, OriginIndex
	}
	return IsPrime(n), OriginOracle
}

// lookup consults the packed index. ok=false selects the fallback.
func (s *Service) lookup(n uint64) (prime, ok bool) {
	if s.source == nil {
		return false, false
	}
	data, ok := s.source.Buffer()
	if !ok {
		return false, false
	}
	return PackedIndex{data: data}.Lookup(n)
}

// isPrimeAny resolves primality through whichever strategy applies,
// without reporting the origin. Used by the scanner's hot loop.
func (s *Service) isPrimeAny(n uint64) bool {
	if prime, ok := s.lookup(n); ok {
		return prime
	}
	return IsPrime(n)
}
