package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/schema"

	"primedex/internal/events"
)

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	var q checkQuery
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid query parameters")
		return
	}

	number, err := parseNumber(q.Number)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	start := time.Now()
	isPrime, origin := h.primes.IsPrime(number)
	h.record(events.KindCheck, number, 0, 1, time.Since(start))

	writeJSON(w, http.StatusOK, CheckResponse{
		Number: number,
		Prime:  isPrime,
		Source: string(origin),
	})
}

func (h *Handler) handleClosest(w http.ResponseWriter, r *http.Request) {
	var q closestQuery
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid query parameters")
		return
	}

	number, err := parseNumber(q.Number)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	count, err := h.clampCount(q.Count)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	start := time.Now()
	matches := h.primes.ClosestPrimes(number, count)
	elapsed := time.Since(start)
	h.record(events.KindClosest, number, count, len(matches), elapsed)

	slog.Debug("Closest primes computed",
		"number", number,
		"count", count,
		"results", len(matches),
		"duration_ms", elapsed.Milliseconds(),
	)

	out := make([]MatchJSON, len(matches))
	for i, m := range matches {
		out[i] = MatchJSON{Prime: m.Prime, Distance: m.Distance}
	}

	writeJSON(w, http.StatusOK, ClosestResponse{
		Number:  number,
		Count:   count,
		Matches: out,
	})
}
