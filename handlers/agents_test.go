package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/satheeshds/commissions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentsAPI(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/agents", map[string]any{"name": "Ana Novak", "branch": "downtown"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	agent, _ := envelope[models.Agent](t, rec)
	assert.True(t, agent.Active)

	rec = do(t, h, http.MethodPost, "/api/v1/agents", map[string]any{"name": "Ana Novak", "branch": "harbor"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/api/v1/agents/%d", agent.ID),
		map[string]any{"name": "Ana Novak", "branch": "downtown", "active": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated, _ := envelope[models.Agent](t, rec)
	assert.False(t, updated.Active)

	rec = do(t, h, http.MethodGet, "/api/v1/agents", nil)
	agents, _ := envelope[[]models.Agent](t, rec)
	assert.Len(t, agents, 1)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/v1/agents/%d", agent.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodGet, fmt.Sprintf("/api/v1/agents/%d", agent.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTargetsAPI(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/v1/targets", map[string]any{"branch": "harbor", "year": 2026, "month": 2, "planned": 500000})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	target, _ := envelope[models.BranchTarget](t, rec)

	rec = do(t, h, http.MethodPost, "/api/v1/targets", map[string]any{"branch": "harbor", "year": 2026, "month": 2, "planned": 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/targets", map[string]any{"branch": "harbor", "year": 2026, "month": 0, "planned": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/api/v1/targets/%d", target.ID), map[string]any{"branch": "harbor", "year": 2026, "month": 2, "planned": 700000})
	require.Equal(t, http.StatusOK, rec.Code)
	updated, _ := envelope[models.BranchTarget](t, rec)
	assert.Equal(t, models.Money(700000), updated.Planned)

	rec = do(t, h, http.MethodGet, "/api/v1/targets?year=2025", nil)
	none, _ := envelope[[]models.BranchTarget](t, rec)
	assert.Empty(t, none)

	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/api/v1/targets/%d", target.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
