package models

// Tranche is one dated installment of a transaction's commission.
// Tranches are owned by exactly one transaction and replaced as a set.
type Tranche struct {
	ID            int64         `json:"id"`
	TransactionID int64         `json:"transaction_id"`
	Month         int           `json:"month"`
	Year          int           `json:"year"`
	Amount        Money         `json:"amount"`
	Status        TrancheStatus `json:"status"`
	Probability   int           `json:"probability"` // 0-100
	Note          *string       `json:"note"`
}

// EffectiveProbability is the stored probability, except that realized
// installments always count as certain.
func (t *Tranche) EffectiveProbability() int {
	if t.Status == StatusRealized {
		return 100
	}
	return t.Probability
}

// TrancheInput is one element of a full tranche-set replacement.
type TrancheInput struct {
	Month       int           `json:"month"`
	Year        int           `json:"year"`
	Amount      Money         `json:"amount"`
	Status      TrancheStatus `json:"status"`
	Probability int           `json:"probability"`
	Note        *string       `json:"note"`
}

func (t *TrancheInput) Validate() string {
	if t.Month < 1 || t.Month > 12 {
		return "month must be between 1 and 12"
	}
	if t.Year < 2000 || t.Year > 2100 {
		return "year is out of range"
	}
	if t.Amount < 0 {
		return "amount must be non-negative"
	}
	if !t.Status.Valid() {
		return "status must be realized or forecast"
	}
	if t.Probability < 0 || t.Probability > 100 {
		return "probability must be between 0 and 100"
	}
	if t.Status == StatusRealized {
		t.Probability = 100
	}
	return ""
}
