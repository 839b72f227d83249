package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_IsPrime_IndexHit(t *testing.T) {
	svc := NewService(staticSource{data: buildIndex(8)})

	prime, origin := svc.IsPrime(97)
	assert.True(t, prime)
	assert.Equal(t, OriginIndex, origin)

	prime, origin = svc.IsPrime(100)
	assert.False(t, prime)
	assert.Equal(t, OriginIndex, origin)
}

func TestService_IsPrime_IndexSaysComposite(t *testing.T) {
	// An in-range candidate whose bit is unset is a definitive
	// composite answer, not a miss.
	svc := NewService(staticSource{data: buildIndex(8)})

	prime, origin := svc.IsPrime(91) // 7*13
	assert.False(t, prime)
	assert.Equal(t, OriginIndex, origin)
}

func TestService_IsPrime_OutOfRangeFallsBack(t *testing.T) {
	svc := NewService(staticSource{data: buildIndex(1)}) // covers up to 29

	prime, origin := svc.IsPrime(31)
	assert.True(t, prime)
	assert.Equal(t, OriginOracle, origin)
}

func TestService_IsPrime_IndexAbsentFallsBack(t *testing.T) {
	for _, svc := range []*Service{NewService(nil), NewService(absentSource{})} {
		prime, origin := svc.IsPrime(97)
		assert.True(t, prime)
		assert.Equal(t, OriginOracle, origin)

		prime, origin = svc.IsPrime(100)
		assert.False(t, prime)
		assert.Equal(t, OriginOracle, origin)
	}
}

func TestService_FallbackAgreesWithIndex(t *testing.T) {
	indexed := NewService(staticSource{data: buildIndex(32)})
	fallback := NewService(absentSource{})

	for n := uint64(0); n < 600; n++ {
		wantPrime, _ := fallback.IsPrime(n)
		gotPrime, _ := indexed.IsPrime(n)
		assert.Equal(t, wantPrime, gotPrime, "disagreement at %d", n)
	}
}
