package repository

import (
	"context"
	"fmt"

	"github.com/satheeshds/commissions/models"
)

const agentSelectQuery = `SELECT id, name, branch, active, created_at FROM agents`

func scanAgent(s scanner) (models.Agent, error) {
	var a models.Agent
	err := s.Scan(&a.ID, &a.Name, &a.Branch, &a.Active, &a.CreatedAt)
	return a, err
}

func (s *Store) ListAgents(ctx context.Context) ([]models.Agent, error) {
	rows, err := s.db.QueryContext(ctx, agentSelectQuery+" ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	defer rows.Close()

	agents := []models.Agent{}
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}
	return agents, rows.Err()
}

func (s *Store) GetAgent(ctx context.Context, id int64) (models.Agent, error) {
	a, err := scanAgent(s.db.QueryRowContext(ctx, agentSelectQuery+" WHERE id = $1", id))
	if err != nil {
		return a, mapError(err)
	}
	return a, nil
}

// CreateAgent expects in to have passed Validate, which defaults Active.
func (s *Store) CreateAgent(ctx context.Context, in models.AgentInput) (models.Agent, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, "INSERT INTO agents (name, branch, active) VALUES ($1, $2, $3) RETURNING id",
		in.Name, string(in.Branch), in.Active != nil && *in.Active).Scan(&id)
	if err != nil {
		return models.Agent{}, fmt.Errorf("failed to insert agent: %w", mapError(err))
	}
	return s.GetAgent(ctx, id)
}

func (s *Store) UpdateAgent(ctx context.Context, id int64, in models.AgentInput) (models.Agent, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE agents SET name = $1, branch = $2, active = $3 WHERE id = $4",
		in.Name, string(in.Branch), in.Active != nil && *in.Active, id)
	if err != nil {
		return models.Agent{}, fmt.Errorf("failed to update agent: %w", mapError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Agent{}, ErrNotFound
	}
	return s.GetAgent(ctx, id)
}

// DeleteAgent removes the agent record only; transactions keep the name and
// drop out of the dashboard working set.
func (s *Store) DeleteAgent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM agents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
