package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/satheeshds/commissions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDeal(t *testing.T, h http.Handler) models.Transaction {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/transactions", dealBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	txn, _ := envelope[models.Transaction](t, rec)
	return txn
}

func TestReplaceTranchesAPI(t *testing.T) {
	h := newTestServer(t)
	txn := createDeal(t, h)
	path := fmt.Sprintf("/api/v1/transactions/%d/tranches", txn.ID)

	rec := do(t, h, http.MethodPut, path, []map[string]any{
		{"month": 1, "year": 2026, "amount": 500000, "status": "realized", "probability": 30},
		{"month": 4, "year": 2026, "amount": 300000, "status": "forecast", "probability": 60},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tranches, _ := envelope[[]models.Tranche](t, rec)
	require.Len(t, tranches, 2)
	assert.Equal(t, 100, tranches[0].Probability)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/api/v1/transactions/%d", txn.ID), nil)
	reloaded, _ := envelope[models.Transaction](t, rec)
	assert.Equal(t, models.Money(800000), reloaded.NetCommission)

	rec = do(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed, _ := envelope[[]models.Tranche](t, rec)
	assert.Equal(t, tranches, listed)
}

func TestReplaceTranchesAPI_Errors(t *testing.T) {
	h := newTestServer(t)
	txn := createDeal(t, h)

	rec := do(t, h, http.MethodPut, fmt.Sprintf("/api/v1/transactions/%d/tranches", txn.ID), []map[string]any{
		{"month": 13, "year": 2026, "amount": 1, "status": "realized"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	_, msg := envelope[any](t, rec)
	assert.Equal(t, "tranche 0: month must be between 1 and 12", msg)

	rec = do(t, h, http.MethodPut, "/api/v1/transactions/9999/tranches", []map[string]any{
		{"month": 1, "year": 2026, "amount": 1, "status": "realized"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/transactions/9999/tranches", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
