package prime

// Direction selects which way a scan walks from its start value.
type Direction int

const (
	// Up scans toward larger values.
	Up Direction = iota
	// Down scans toward smaller values.
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// ScanBound is the absolute ceiling for upward scans. In practice the
// oracle finds a prime long before a scan gets anywhere near it; the
// bound only guards against unbounded work on pathological input.
const ScanBound = uint64(10_000_000_000)

// Scan collects up to count primes strictly adjacent to start in the
// given direction. start itself is never included, even when prime.
// The result is ordered by distance from start and may be shorter than
// count (empty included) when the walk leaves (1, ScanBound); a short
// result is a normal outcome, not an error.
func (s *Service) Scan(start uint64, count int, dir Direction) []uint64 {
	if count <= 0 {
		return nil
	}
	out := make([]uint64, 0, count)
	s.ScanFunc(start, count, dir, func(p uint64) bool {
		out = append(out, p)
		return true
	})
	return out
}

// ScanFunc is the streaming form of Scan: yield is called once per
// prime found, in discovery order. Returning false from yield stops
// the scan early.
func (s *Service) ScanFunc(start uint64, count int, dir Direction, yield func(p uint64) bool) {
	if count <= 0 {
		return
	}
	if dir == Down && start == 0 {
		return
	}

	cur := start + 1
	if dir == Down {
		cur = start - 1
	}

	found := 0
	for found < count && cur > 1 && cur < ScanBound {
		if s.isPrimeAny(cur) {
			found++
			if !yield(cur) {
				return
			}
		}
		if dir == Down {
			cur--
		} else {
			cur++
		}
	}
}
