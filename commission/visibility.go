package commission

import "github.com/satheeshds/commissions/models"

// IsVisibleInRange decides whether a transaction belongs to the working set
// of r. Without tranches its own month counts; with tranches it is visible
// as soon as any one installment falls inside r.
func IsVisibleInRange(t models.Transaction, tranches []models.Tranche, r Range) bool {
	if len(tranches) == 0 {
		return r.Contains(t.Year, t.Month)
	}
	for _, tr := range tranches {
		if r.Contains(tr.Year, tr.Month) {
			return true
		}
	}
	return false
}

// ActiveAgentNames returns the set of agent names currently marked active.
func ActiveAgentNames(agents []models.Agent) map[string]bool {
	active := make(map[string]bool, len(agents))
	for _, a := range agents {
		if a.Active {
			active[a.Name] = true
		}
	}
	return active
}

// WorkingSet keeps the transactions visible in r whose agent is active.
// A nil active set disables the agent check.
func WorkingSet(txns []models.Transaction, idx TrancheIndex, r Range, active map[string]bool) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if active != nil && !active[t.Agent] {
			continue
		}
		if IsVisibleInRange(t, idx[t.ID], r) {
			out = append(out, t)
		}
	}
	return out
}
