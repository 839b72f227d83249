package rest

import (
	"fmt"
	"strconv"
)

// parseNumber reads a base-10 uint64, the only number format accepted
// at the boundary.
func parseNumber(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("number is required")
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number must be a non-negative integer")
	}
	return n, nil
}

// clampCount applies the default and the configured ceiling to a
// requested result count.
func (h *Handler) clampCount(count int) (int, error) {
	if count == 0 {
		return h.cfg.DefaultCount, nil
	}
	if count < 0 {
		return 0, fmt.Errorf("count must be positive")
	}
	if count > h.cfg.MaxCount {
		return h.cfg.MaxCount, nil
	}
	return count, nil
}
