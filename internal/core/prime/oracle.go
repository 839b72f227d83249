package prime

// IsPrime reports whether n is prime using trial division.
// After the 2/3 fast paths only divisors of the form 6k±1 are tested,
// so the loop runs sqrt(n)/3 iterations in the worst case. It is the
// ground truth the packed index is checked against, and the fallback
// for values the index does not cover.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
