package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/satheeshds/commissions/models"
)

// ListTargets lists branch targets
// @Summary      List branch targets
// @Description  Get the monthly commission plan per branch.
// @Tags         targets
// @Produce      json
// @Param        year  query     int  false  "Filter by year"
// @Success      200   {object}  Response{data=[]models.BranchTarget}
// @Router       /targets [get]
// @Security     BasicAuth
func ListTargets(w http.ResponseWriter, r *http.Request) {
	year := 0
	if y := r.URL.Query().Get("year"); y != "" {
		var err error
		if year, err = strconv.Atoi(y); err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
	}
	targets, err := Repo.ListBranchTargets(r.Context(), year)
	if err != nil {
		writeStoreError(w, r, err, "target")
		return
	}
	writeJSON(w, http.StatusOK, targets)
}

// GetTarget retrieves a single branch target by ID
// @Summary      Get branch target
// @Tags         targets
// @Produce      json
// @Param        id   path      int  true  "Target ID"
// @Success      200  {object}  Response{data=models.BranchTarget}
// @Failure      404  {object}  Response{error=string}
// @Router       /targets/{id} [get]
// @Security     BasicAuth
func GetTarget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := Repo.GetBranchTarget(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "target")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTarget creates a branch target
// @Summary      Create branch target
// @Description  Plan a branch's commission for one month. One target per branch and month.
// @Tags         targets
// @Accept       json
// @Produce      json
// @Param        target  body      models.BranchTargetInput  true  "Target contents"
// @Success      201     {object}  Response{data=models.BranchTarget}
// @Failure      400     {object}  Response{error=string}
// @Failure      409     {object}  Response{error=string}
// @Router       /targets [post]
// @Security     BasicAuth
func CreateTarget(w http.ResponseWriter, r *http.Request) {
	var input models.BranchTargetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t, err := Repo.CreateBranchTarget(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, err, "target")
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// UpdateTarget updates a branch target
// @Summary      Update branch target
// @Tags         targets
// @Accept       json
// @Produce      json
// @Param        id      path      int                       true  "Target ID"
// @Param        target  body      models.BranchTargetInput  true  "Target contents"
// @Success      200     {object}  Response{data=models.BranchTarget}
// @Failure      404     {object}  Response{error=string}
// @Router       /targets/{id} [put]
// @Security     BasicAuth
func UpdateTarget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var input models.BranchTargetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t, err := Repo.UpdateBranchTarget(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, err, "target")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DeleteTarget deletes a branch target
// @Summary      Delete branch target
// @Tags         targets
// @Produce      json
// @Param        id   path      int  true  "Target ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /targets/{id} [delete]
// @Security     BasicAuth
func DeleteTarget(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := Repo.DeleteBranchTarget(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "target")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
