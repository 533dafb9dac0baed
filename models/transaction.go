package models

import "time"

// Transaction represents one closed or pending property deal.
// Once tranches exist for it, Month, Year and NetCommission are kept for
// display only; the tranche set decides date filtering and totals.
type Transaction struct {
	ID            int64     `json:"id"` // 0 until persisted
	Branch        Branch    `json:"branch"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Agent         string    `json:"agent"`
	PropertyType  string    `json:"property_type"`
	Side          DealSide  `json:"side"`
	Address       string    `json:"address"`
	NetCommission Money     `json:"net_commission"`
	PropertyValue Money     `json:"property_value"`
	Cost          Money     `json:"cost"`
	Credit        Money     `json:"credit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Persisted reports whether the transaction has been stored and can own tranches.
func (t *Transaction) Persisted() bool {
	return t.ID > 0
}

// TransactionInput is used for creating/updating transactions.
type TransactionInput struct {
	Branch        Branch   `json:"branch"`
	Month         int      `json:"month"`
	Year          int      `json:"year"`
	Agent         string   `json:"agent"`
	PropertyType  string   `json:"property_type"`
	Side          DealSide `json:"side"`
	Address       string   `json:"address"`
	NetCommission Money    `json:"net_commission"`
	PropertyValue Money    `json:"property_value"`
	Cost          Money    `json:"cost"`
	Credit        Money    `json:"credit"`
}

func (t *TransactionInput) Validate() string {
	if !t.Branch.Valid() {
		return "branch must be one of: downtown, riverside, harbor, hillside"
	}
	if t.Month < 1 || t.Month > 12 {
		return "month must be between 1 and 12"
	}
	if t.Year < 2000 || t.Year > 2100 {
		return "year is out of range"
	}
	if t.Agent == "" {
		return "agent is required"
	}
	if !t.Side.Valid() {
		return "side must be one of: sale, purchase, rental, lease"
	}
	if t.NetCommission < 0 || t.PropertyValue < 0 {
		return "amounts must be non-negative"
	}
	if t.Cost < 0 || t.Credit < 0 {
		return "cost and credit must be non-negative"
	}
	return ""
}
