package prime

// PackedIndex is a read-only view over a PrimesDB buffer.
//
// The buffer encodes primality for every integer whose final digit is
// 1, 3, 7 or 9 (all other integers above 5 are trivially composite).
// Each byte packs two decades of four candidates each: byte a covers
// decade 2a+1 in its low nibble and decade 2a+2 in its high nibble,
// one bit per final digit in the order 1, 3, 7, 9. A set bit means
// prime.
//
// The zero value answers nothing (every Lookup of an in-buffer value
// reports ok=false), which is the required behavior when no index data
// has been loaded.
type PackedIndex struct {
	data []byte
}

// NewPackedIndex wraps data without copying. The caller must not
// mutate the slice afterwards; the index is shared read-only state.
func NewPackedIndex(data []byte) PackedIndex {
	return PackedIndex{data: data}
}

// Len returns the buffer size in bytes.
func (ix PackedIndex) Len() int {
	return len(ix.data)
}

// MaxValue returns the largest integer the buffer can answer for.
// Byte a covers decades 2a+1 and 2a+2, so L bytes cover everything
// up to 10*(2L)+9.
func (ix PackedIndex) MaxValue() uint64 {
	if len(ix.data) == 0 {
		return 0
	}
	return uint64(len(ix.data))*20 + 9
}

// Lookup answers whether n is prime, when the buffer covers n.
// ok=false means the value is outside the encoded range (or no buffer
// is loaded) and the caller must fall back to trial division.
//
// Values that are decided without the buffer (small primes, multiples
// of 2/3/5, final digits outside {1,3,7,9}) are answered directly with
// ok=true regardless of buffer size.
func (ix PackedIndex) Lookup(n uint64) (prime, ok bool) {
	if n < 2 {
		return false, true
	}
	switch n {
	case 2, 3, 5, 7:
		return true, true
	}
	if n%2 == 0 || n%3 == 0 || n%5 == 0 {
		return false, true
	}
	bit, candidate := bitForDigit(n % 10)
	if !candidate {
		return false, true
	}

	// Byte address is round-half-up(decade/2) - 1. Decade 0 maps to -1,
	// i.e. single-digit values are never in the buffer.
	decade := n / 10
	addr := int64((decade+1)/2) - 1
	if addr < 0 || addr >= int64(len(ix.data)) {
		return false, false
	}

	// Odd decades occupy the low nibble, even decades the high one.
	if decade%2 == 0 {
		bit += 4
	}
	return ix.data[addr]>>bit&1 == 1, true
}

// bitForDigit maps a final digit to its bit slot within a nibble.
func bitForDigit(digit uint64) (uint, bool) {
	switch digit {
	case 1:
		return 0, true
	case 3:
		return 1, true
	case 7:
		return 2, true
	case 9:
		return 3, true
	}
	return 0, false
}
