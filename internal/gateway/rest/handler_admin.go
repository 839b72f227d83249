package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"primedex/internal/core/primesdb"
	"primedex/internal/core/pubsub/memory"
)

type AdminIndexInfo struct {
	Stats    *primesdb.Stats `json:"stats,omitempty"`
	MaxValue uint64          `json:"maxValue,omitempty"`
}

type AdminCatalogInfo struct {
	Backend string `json:"backend"`
	Count   int64  `json:"count"`
}

type AdminRecentQuery struct {
	Subject   string          `json:"subject"`
	Timestamp time.Time       `json:"timestamp"`
	Event     json.RawMessage `json:"event"`
}

type AdminInfoResponse struct {
	UptimeSeconds int64              `json:"uptimeSeconds"`
	Index         AdminIndexInfo     `json:"index"`
	Catalog       *AdminCatalogInfo  `json:"catalog,omitempty"`
	RecentQueries []AdminRecentQuery `json:"recentQueries,omitempty"`
}

const recentQueryLimit = 20

func (h *Handler) handleAdminInfo(w http.ResponseWriter, r *http.Request) {
	resp := AdminInfoResponse{
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
	}

	if h.index != nil {
		stats := h.index.Stats()
		resp.Index.Stats = &stats
		if stats.Loaded {
			// 20 values per index byte
			resp.Index.MaxValue = uint64(stats.Size)*20 + 9
		}
	}

	if h.catalog != nil {
		count, err := h.catalog.Count(r.Context())
		if err != nil {
			count = -1
		}
		resp.Catalog = &AdminCatalogInfo{
			Backend: h.catalog.Backend(),
			Count:   count,
		}
	}

	// Recent query events are only observable on the in-memory backend.
	if mp, ok := h.events.(*memory.Publisher); ok {
		for _, e := range mp.Recent(recentQueryLimit) {
			resp.RecentQueries = append(resp.RecentQueries, AdminRecentQuery{
				Subject:   e.Subject,
				Timestamp: e.Timestamp,
				Event:     json.RawMessage(e.Data),
			})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
