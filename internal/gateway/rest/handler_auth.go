package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"primedex/internal/core/auth"
)

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		writeError(w, http.StatusServiceUnavailable, ErrCodeUnavailable, "Admin auth is not configured")
		return
	}

	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "password is required")
		return
	}

	token, expiresIn, err := h.auth.IssueToken(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	})
}
