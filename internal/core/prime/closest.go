package prime

import "sort"

// Match pairs a prime with its absolute distance from the queried
// number.
type Match struct {
	Prime    uint64
	Distance uint64
}

// ClosestPrimes returns up to count primes nearest to n, ordered by
// ascending distance. Equidistant pairs keep the upward prime first
// (upward candidates are enumerated before downward ones and the sort
// is stable). The result is shorter than count only when one or both
// scans exhausted their range.
func (s *Service) ClosestPrimes(n uint64, count int) []Match {
	if count <= 0 {
		return nil
	}

	up := s.Scan(n, count, Up)
	down := s.Scan(n, count, Down)

	matches := make([]Match, 0, len(up)+len(down))
	for _, p := range up {
		matches = append(matches, Match{Prime: p, Distance: p - n})
	}
	for _, p := range down {
		matches = append(matches, Match{Prime: p, Distance: n - p})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > count {
		matches = matches[:count]
	}
	return matches
}
