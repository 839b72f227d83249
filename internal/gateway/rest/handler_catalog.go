package rest

import (
	"net/http"

	"github.com/gorilla/schema"

	"primedex/internal/plate"
)

const (
	defaultSampleCount = 5
	maxSampleCount     = 100
)

func (h *Handler) handleSamples(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "Catalog is not configured")
		return
	}

	var q samplesQuery
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid query parameters")
		return
	}

	n := q.N
	if n == 0 {
		n = defaultSampleCount
	}
	if n < 0 {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "n must be positive")
		return
	}
	if n > maxSampleCount {
		n = maxSampleCount
	}

	primes, err := h.catalog.Sample(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to sample catalog")
		return
	}

	plates := make([]SamplePlate, len(primes))
	for i, p := range primes {
		plates[i] = SamplePlate{Prime: p, Plate: plate.ToBase36(p)}
	}

	writeJSON(w, http.StatusOK, SamplesResponse{Plates: plates})
}
