package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/satheeshds/commissions/models"
)

// ListAgents lists all agents
// @Summary      List agents
// @Description  Get all sales agents with their active status.
// @Tags         agents
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Agent}
// @Router       /agents [get]
// @Security     BasicAuth
func ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := Repo.ListAgents(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "agent")
		return
	}
	writeJSON(w, http.StatusOK, agents)
}

// GetAgent retrieves a single agent by ID
// @Summary      Get agent
// @Tags         agents
// @Produce      json
// @Param        id   path      int  true  "Agent ID"
// @Success      200  {object}  Response{data=models.Agent}
// @Failure      404  {object}  Response{error=string}
// @Router       /agents/{id} [get]
// @Security     BasicAuth
func GetAgent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := Repo.GetAgent(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "agent")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// CreateAgent creates a new agent
// @Summary      Create agent
// @Description  Register a sales agent. Agents are active unless stated otherwise.
// @Tags         agents
// @Accept       json
// @Produce      json
// @Param        agent  body      models.AgentInput  true  "Agent contents"
// @Success      201    {object}  Response{data=models.Agent}
// @Failure      400    {object}  Response{error=string}
// @Failure      409    {object}  Response{error=string}
// @Router       /agents [post]
// @Security     BasicAuth
func CreateAgent(w http.ResponseWriter, r *http.Request) {
	var input models.AgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	a, err := Repo.CreateAgent(r.Context(), input)
	if err != nil {
		writeStoreError(w, r, err, "agent")
		return
	}
	invalidateDashboard()
	writeJSON(w, http.StatusCreated, a)
}

// UpdateAgent updates an existing agent
// @Summary      Update agent
// @Description  Rename, move or (de)activate an agent. Inactive agents drop out of the dashboard.
// @Tags         agents
// @Accept       json
// @Produce      json
// @Param        id     path      int                true  "Agent ID"
// @Param        agent  body      models.AgentInput  true  "Agent contents"
// @Success      200    {object}  Response{data=models.Agent}
// @Failure      404    {object}  Response{error=string}
// @Router       /agents/{id} [put]
// @Security     BasicAuth
func UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var input models.AgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	a, err := Repo.UpdateAgent(r.Context(), id, input)
	if err != nil {
		writeStoreError(w, r, err, "agent")
		return
	}
	invalidateDashboard()
	writeJSON(w, http.StatusOK, a)
}

// DeleteAgent deletes an agent
// @Summary      Delete agent
// @Tags         agents
// @Produce      json
// @Param        id   path      int  true  "Agent ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /agents/{id} [delete]
// @Security     BasicAuth
func DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := Repo.DeleteAgent(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "agent")
		return
	}
	invalidateDashboard()
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
