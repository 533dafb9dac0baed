package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/repository"
)

// now is swapped in tests.
var now = time.Now

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// parseRange reads start, end and year, defaulting to the whole current year.
func parseRange(r *http.Request) (commission.Range, error) {
	rng := commission.FullYear(now().Year())
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"year", &rng.Year},
		{"start", &rng.StartMonth},
		{"end", &rng.EndMonth},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return rng, fmt.Errorf("%s must be an integer", p.name)
		}
		*p.dst = n
	}
	if rng.StartMonth < 1 || rng.EndMonth > 12 || rng.StartMonth > rng.EndMonth {
		return rng, fmt.Errorf("start and end must satisfy 1 <= start <= end <= 12")
	}
	return rng, nil
}

// writeStoreError maps repository sentinels onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, what+" already exists")
	default:
		slog.Error("store error", "error", err, "path", r.URL.Path, "request_id", GetRequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// invalidateDashboard drops memoized views after a write.
func invalidateDashboard() {
	if Dashboard != nil {
		Dashboard.Invalidate()
	}
}
