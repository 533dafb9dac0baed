package models

// BranchTarget is the planned commission for one branch in one month.
type BranchTarget struct {
	ID      int64  `json:"id"`
	Branch  Branch `json:"branch"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Planned Money  `json:"planned"`
}

// BranchTargetInput is used for creating/updating targets.
type BranchTargetInput struct {
	Branch  Branch `json:"branch"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Planned Money  `json:"planned"`
}

func (b *BranchTargetInput) Validate() string {
	if !b.Branch.Valid() {
		return "branch must be one of: downtown, riverside, harbor, hillside"
	}
	if b.Month < 1 || b.Month > 12 {
		return "month must be between 1 and 12"
	}
	if b.Year < 2000 || b.Year > 2100 {
		return "year is out of range"
	}
	if b.Planned < 0 {
		return "planned must be non-negative"
	}
	return ""
}
