package models

import "time"

// Agent is a sales representative. Transactions reference agents by name.
type Agent struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Branch    Branch    `json:"branch"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentInput is used for creating/updating agents.
type AgentInput struct {
	Name   string `json:"name"`
	Branch Branch `json:"branch"`
	Active *bool  `json:"active"`
}

func (a *AgentInput) Validate() string {
	if a.Name == "" {
		return "name is required"
	}
	if !a.Branch.Valid() {
		return "branch must be one of: downtown, riverside, harbor, hillside"
	}
	if a.Active == nil {
		active := true
		a.Active = &active
	}
	return ""
}
