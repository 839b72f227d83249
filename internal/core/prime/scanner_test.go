package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan_Up(t *testing.T) {
	svc := NewService(nil)

	tests := []struct {
		name  string
		start uint64
		count int
		want  []uint64
	}{
		{"from composite", 100, 3, []uint64{101, 103, 107}},
		{"start itself excluded", 97, 2, []uint64{101, 103}},
		{"from zero", 0, 4, []uint64{2, 3, 5, 7}},
		{"zero count", 100, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Scan(tt.start, tt.count, Up))
		})
	}
}

func TestScan_Down(t *testing.T) {
	svc := NewService(nil)

	tests := []struct {
		name  string
		start uint64
		count int
		want  []uint64
	}{
		{"from composite", 100, 3, []uint64{97, 89, 83}},
		{"start itself excluded", 97, 2, []uint64{89, 83}},
		{"exhausts below two", 2, 1, []uint64{}},
		{"short result", 10, 5, []uint64{7, 5, 3, 2}},
		{"from zero", 0, 1, []uint64{}},
		{"from one", 1, 1, []uint64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Scan(tt.start, tt.count, Down))
		})
	}
}

func TestScan_AboveBoundYieldsNothing(t *testing.T) {
	svc := NewService(nil)

	// The cursor starts at or beyond the bound, so both walks stop
	// before testing a single candidate.
	assert.Empty(t, svc.Scan(ScanBound, 1, Up))
	assert.Empty(t, svc.Scan(ScanBound+5, 1, Up))
}

func TestScan_PrefersIndexOverOracle(t *testing.T) {
	// A deliberately wrong index proves the scanner consults it first:
	// byte 0 cleared means "nothing in decades 1-2 is prime".
	svc := NewService(staticSource{data: make([]byte, 1)})

	got := svc.Scan(10, 3, Up)
	// 11,13,17,19,23,29 are skipped on the index's word; 31 is out of
	// the one-byte range and resolves through the oracle.
	assert.Equal(t, []uint64{31, 37, 41}, got)
}

func TestScanFunc_StopsWhenYieldReturnsFalse(t *testing.T) {
	svc := NewService(nil)

	var seen []uint64
	svc.ScanFunc(100, 10, Up, func(p uint64) bool {
		seen = append(seen, p)
		return len(seen) < 2
	})
	assert.Equal(t, []uint64{101, 103}, seen)
}
