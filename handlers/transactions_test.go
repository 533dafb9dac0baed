package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/satheeshds/commissions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsAPI(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/transactions", dealBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created, _ := envelope[models.Transaction](t, rec)
	assert.Equal(t, "Ana Novak", created.Agent)
	assert.Equal(t, models.Money(1200000), created.NetCommission)
	path := fmt.Sprintf("/api/v1/transactions/%d", created.ID)

	rec = do(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := dealBody()
	body["month"] = 2
	rec = do(t, h, http.MethodPut, path, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated, _ := envelope[models.Transaction](t, rec)
	assert.Equal(t, 2, updated.Month)

	rec = do(t, h, http.MethodGet, "/api/v1/transactions?year=2026", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list, _ := envelope[[]models.Transaction](t, rec)
	assert.Len(t, list, 1)

	rec = do(t, h, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, msg := envelope[any](t, rec)
	assert.Equal(t, "transaction not found", msg)
}

func TestTransactionsAPI_Validation(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   string
	}{
		{"bad branch", func(b map[string]any) { b["branch"] = "uptown" }, "branch must be one of: downtown, riverside, harbor, hillside"},
		{"bad month", func(b map[string]any) { b["month"] = 13 }, "month must be between 1 and 12"},
		{"missing agent", func(b map[string]any) { b["agent"] = "" }, "agent is required"},
		{"negative cost", func(b map[string]any) { b["cost"] = -1 }, "cost and credit must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := dealBody()
			tt.mutate(body)
			rec := do(t, h, http.MethodPost, "/api/v1/transactions", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			_, msg := envelope[any](t, rec)
			assert.Equal(t, tt.want, msg)
		})
	}

	rec := do(t, h, http.MethodGet, "/api/v1/transactions/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
