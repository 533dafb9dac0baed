package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/satheeshds/commissions/commission"
	"github.com/satheeshds/commissions/dashboard"
	"github.com/satheeshds/commissions/db"
	"github.com/satheeshds/commissions/repository"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the API against a fresh in-memory DuckDB database.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	conn, err := db.OpenDuckDB("")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background(), conn, db.DriverDuckDB))

	store := repository.New(conn)
	Repo = store
	Dashboard = dashboard.NewService(store, store, commission.Resolver{}, time.Minute)
	now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		conn.Close()
		Repo, Dashboard, now = nil, nil, time.Now
	})

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/transactions", ListTransactions)
		r.Post("/transactions", CreateTransaction)
		r.Get("/transactions/{id}", GetTransaction)
		r.Put("/transactions/{id}", UpdateTransaction)
		r.Delete("/transactions/{id}", DeleteTransaction)
		r.Get("/transactions/{id}/tranches", ListTranches)
		r.Put("/transactions/{id}/tranches", ReplaceTranches)
		r.Get("/agents", ListAgents)
		r.Post("/agents", CreateAgent)
		r.Get("/agents/{id}", GetAgent)
		r.Put("/agents/{id}", UpdateAgent)
		r.Delete("/agents/{id}", DeleteAgent)
		r.Get("/targets", ListTargets)
		r.Post("/targets", CreateTarget)
		r.Get("/targets/{id}", GetTarget)
		r.Put("/targets/{id}", UpdateTarget)
		r.Delete("/targets/{id}", DeleteTarget)
		r.Get("/dashboard/summary", GetSummary)
		r.Get("/dashboard/branches", GetBranches)
		r.Get("/dashboard/agents", GetAgentRanking)
		r.Get("/dashboard/monthly", GetMonthly)
		r.Get("/dashboard/trend", GetTrend)
		r.Get("/dashboard/plan", GetPlan)
		r.Get("/dashboard/installments", GetInstallments)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope decodes a Response whose data has type T.
func envelope[T any](t *testing.T, rec *httptest.ResponseRecorder) (T, string) {
	t.Helper()
	var resp struct {
		Data  T      `json:"data"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Data, resp.Error
}

func dealBody() map[string]any {
	return map[string]any{
		"branch":         "downtown",
		"month":          1,
		"year":           2026,
		"agent":          "Ana Novak",
		"property_type":  "house",
		"side":           "sale",
		"address":        "Quay 12",
		"net_commission": 1200000,
		"property_value": 40000000,
		"cost":           120000,
		"credit":         0,
	}
}
