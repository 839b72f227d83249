package rest

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"sort"
	"time"

	"primedex/internal/core/prime"
	"primedex/internal/events"
	"primedex/internal/plate"
)

// Plate searches default to a small candidate set per part; the
// combination grid stays readable at 3x3.
const (
	defaultPlateCount   = 3
	maxCombinations     = 9
	combinationsPerPart = 3
)

func (h *Handler) handlePlateSearch(w http.ResponseWriter, r *http.Request) {
	var req PlateSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON body")
		return
	}

	if req.Part1 == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "part1 is required")
		return
	}

	count := req.Count
	if count == 0 {
		count = defaultPlateCount
	}
	if count < 0 {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "count must be positive")
		return
	}
	if count > h.cfg.MaxCount {
		count = h.cfg.MaxCount
	}

	raws := []string{req.Part1}
	if req.Part2 != "" {
		raws = append(raws, req.Part2)
	}
	if len(raws) > h.cfg.MaxPlateParts {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "too many plate parts")
		return
	}

	start := time.Now()

	parts := make([]plate.Part, len(raws))
	partMatches := make([][]prime.Match, len(raws))
	results := make([]PartResult, len(raws))
	for i, raw := range raws {
		p, err := plate.ParsePart(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrCodeBadRequest, plateErrorMessage(err))
			return
		}
		parts[i] = p

		isPrime, _ := h.primes.IsPrime(p.Value)
		matches := h.primes.ClosestPrimes(p.Value, count)
		partMatches[i] = matches

		out := make([]PlateMatch, len(matches))
		for j, m := range matches {
			out[j] = PlateMatch{
				Prime:       m.Prime,
				PrimeBase36: plate.ToBase36(m.Prime),
				Distance:    m.Distance,
			}
		}
		results[i] = PartResult{
			Original:      p.Raw,
			Base10:        p.Value,
			HasLetters:    p.HasLetters,
			IsPrime:       isPrime,
			ClosestPrimes: out,
		}
	}

	resp := PlateSearchResponse{Parts: results}
	if len(parts) == 2 {
		resp.Combinations = combinePlates(parts[0], partMatches[0], parts[1], partMatches[1], count)
	}

	h.record(events.KindPlate, parts[0].Value, count, len(results), time.Since(start))

	writeJSON(w, http.StatusOK, resp)
}

// combinePlates builds candidate plates pairing one prime per part,
// ordered by combined distance. With count above the grid size the
// pairs are drawn randomly instead of exhaustively.
func combinePlates(p1 plate.Part, m1 []prime.Match, p2 plate.Part, m2 []prime.Match, count int) []PlateCombination {
	if len(m1) == 0 || len(m2) == 0 {
		return nil
	}

	type pair struct{ i, j int }
	var pairs []pair

	if count <= combinationsPerPart {
		for i := range m1 {
			for j := range m2 {
				pairs = append(pairs, pair{i, j})
			}
		}
	} else {
		seen := make(map[pair]bool)
		limit := maxCombinations
		if total := len(m1) * len(m2); total < limit {
			limit = total
		}
		for len(pairs) < limit {
			p := pair{rand.Intn(len(m1)), rand.Intn(len(m2))}
			if seen[p] {
				continue
			}
			seen[p] = true
			pairs = append(pairs, p)
		}
	}

	combos := make([]PlateCombination, len(pairs))
	for k, p := range pairs {
		a, b := m1[p.i], m2[p.j]
		combos[k] = PlateCombination{
			Plate:         p1.Render(a.Prime) + "-" + p2.Render(b.Prime),
			Part1Prime:    a.Prime,
			Part2Prime:    b.Prime,
			TotalDistance: a.Distance + b.Distance,
		}
	}

	sort.SliceStable(combos, func(i, j int) bool {
		return combos[i].TotalDistance < combos[j].TotalDistance
	})
	if len(combos) > maxCombinations {
		combos = combos[:maxCombinations]
	}
	return combos
}

func plateErrorMessage(err error) string {
	switch {
	case errors.Is(err, plate.ErrPartLength):
		return "plate parts must be 2 to 5 characters"
	case errors.Is(err, plate.ErrPartCharset):
		return "plate parts may only contain letters and digits"
	default:
		return "invalid plate part"
	}
}
