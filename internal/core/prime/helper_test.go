package prime

// buildIndex encodes primality for decades 1..2*size into a synthetic
// PrimesDB buffer of the given byte size, using trial division as the
// reference. Byte a carries decade 2a+1 in its low nibble and decade
// 2a+2 in its high nibble.
func buildIndex(size int) []byte {
	buf := make([]byte, size)
	for d := 1; d <= 2*size; d++ {
		addr := (d+1)/2 - 1
		for i, digit := range []int{1, 3, 7, 9} {
			n := uint64(d*10 + digit)
			if !IsPrime(n) {
				continue
			}
			bit := uint(i)
			if d%2 == 0 {
				bit += 4
			}
			buf[addr] |= 1 << bit
		}
	}
	return buf
}

// staticSource serves a fixed buffer.
type staticSource struct {
	data []byte
}

func (s staticSource) Buffer() ([]byte, bool) {
	return s.data, true
}

// absentSource reports that no buffer is available.
type absentSource struct{}

func (absentSource) Buffer() ([]byte, bool) {
	return nil, false
}
