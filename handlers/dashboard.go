package handlers

import (
	"log/slog"
	"net/http"

	"github.com/satheeshds/commissions/commission"
)

// serveView writes one dashboard reduction for the requested window.
func serveView(w http.ResponseWriter, r *http.Request, build func(commission.Range) (any, error)) {
	rng, err := parseRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := build(rng)
	if err != nil {
		slog.Error("dashboard view failed", "error", err, "path", r.URL.Path, "period", rng.String(),
			"request_id", GetRequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// GetSummary returns the period totals
// @Summary      Dashboard summary
// @Description  Outcome, commission, cost, realized and weighted forecast totals of the active working set.
// @Tags         dashboard
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        start  query     int  false  "First month (default 1)"
// @Param        end    query     int  false  "Last month (default 12)"
// @Success      200    {object}  Response{data=dashboard.Summary}
// @Failure      400    {object}  Response{error=string}
// @Router       /dashboard/summary [get]
// @Security     BasicAuth
func GetSummary(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, func(rng commission.Range) (any, error) {
		return Dashboard.Summary(r.Context(), rng)
	})
}

// GetBranches returns per-branch totals
// @Summary      Branch totals
// @Description  Totals per branch with property value and commission rate.
// @Tags         dashboard
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        start  query     int  false  "First month (default 1)"
// @Param        end    query     int  false  "Last month (default 12)"
// @Success      200    {object}  Response{data=[]commission.BranchTotals}
// @Router       /dashboard/branches [get]
// @Security     BasicAuth
func GetBranches(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, func(rng commission.Range) (any, error) {
		return Dashboard.Branches(r.Context(), rng)
	})
}

// GetAgentRanking returns the agent ranking
// @Summary      Agent ranking
// @Description  Outcome per agent, highest first.
// @Tags         dashboard
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        start  query     int  false  "First month (default 1)"
// @Param        end    query     int  false  "Last month (default 12)"
// @Success      200    {object}  Response{data=[]commission.AgentTotals}
// @Router       /dashboard/agents [get]
// @Security     BasicAuth
func GetAgentRanking(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, func(rng commission.Range) (any, error) {
		return Dashboard.Agents(r.Context(), rng)
	})
}

// GetMonthly returns the monthly series
// @Summary      Monthly series
// @Tags         dashboard
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        start  query     int  false  "First month (default 1)"
// @Param        end    query     int  false  "Last month (default 12)"
// @Success      200    {object}  Response{data=[]commission.MonthTotals}
// @Router       /dashboard/monthly [get]
// @Security     BasicAuth
func GetMonthly(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, func(rng commission.Range) (any, error) {
		return Dashboard.Monthly(r.Context(), rng)
	})
}

// GetTrend returns the period-over-period comparison
// @Summary      Trend
// @Description  Change against the preceding window of equal length.
// @Tags         dashboard
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        start  query     int  false  "First month (default 1)"
// @Param        end    query     int  false  "Last month (default 12)"
// @Success      200    {object}  Response{data=commission.TrendReport}
// @Router       /dashboard/trend [get]
// @Security     BasicAuth
func GetTrend(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, func(rng commission.Range) (any, error) {
		return Dashboard.Trend(r.Context(), rng)
	})
}

// GetPlan returns plan versus actual
// @Summary      Plan vs actual
// @Description  Planned amount against realized outcome per branch and month.
// @Tags         dashboard
// @Produce      json
// @Param        year   query     int  false  "Year (default current)"
// @Param        start  query     int  false  "First month (default 1)"
// @Param        end    query     int  false  "Last month (default 12)"
// @Success      200    {object}  Response{data=commission.PlanReport}
// @Router       /dashboard/plan [get]
// @Security     BasicAuth
func GetPlan(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, func(rng commission.Range) (any, error) {
		return Dashboard.Plan(r.Context(), rng)
	})
}

// GetInstallments returns the effective tranches
// @Summary      Effective tranches
// @Description  Resolved installments of the window. unfiltered=true includes inactive agents and is meant for audits.
// @Tags         dashboard
// @Produce      json
// @Param        year        query     int   false  "Year (default current)"
// @Param        start       query     int   false  "First month (default 1)"
// @Param        end         query     int   false  "Last month (default 12)"
// @Param        unfiltered  query     bool  false  "Skip visibility and agent filtering"
// @Success      200         {object}  Response{data=[]commission.EffectiveTranche}
// @Router       /dashboard/installments [get]
// @Security     BasicAuth
func GetInstallments(w http.ResponseWriter, r *http.Request) {
	serveView(w, r, func(rng commission.Range) (any, error) {
		return Dashboard.Installments(r.Context(), rng, r.URL.Query().Get("unfiltered") == "true")
	})
}
