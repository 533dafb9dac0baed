package commission

import (
	"sort"

	"github.com/satheeshds/commissions/models"
	"github.com/shopspring/decimal"
)

// AgentTotals is one line of the agent ranking.
type AgentTotals struct {
	Agent        string          `json:"agent"`
	Branch       models.Branch   `json:"branch"`
	Outcome      decimal.Decimal `json:"outcome"`
	Commission   decimal.Decimal `json:"commission"`
	Transactions int             `json:"transactions"`
}

// RankAgents sums outcome per agent name and orders agents by descending
// outcome. Ties keep the order in which agents first appear in rows.
// An agent's branch is the branch of their first transaction in rows.
func RankAgents(rows []EffectiveTranche) []AgentTotals {
	var ranking []AgentTotals
	pos := make(map[string]int)
	seen := make(map[*models.Transaction]bool)
	for i := range rows {
		e := &rows[i]
		name := e.Transaction.Agent
		j, ok := pos[name]
		if !ok {
			j = len(ranking)
			pos[name] = j
			ranking = append(ranking, AgentTotals{Agent: name, Branch: e.Transaction.Branch})
		}
		a := &ranking[j]
		a.Outcome = a.Outcome.Add(e.Outcome)
		a.Commission = a.Commission.Add(e.Amount)
		if !seen[e.Transaction] {
			seen[e.Transaction] = true
			a.Transactions++
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Outcome.GreaterThan(ranking[j].Outcome)
	})
	return ranking
}
