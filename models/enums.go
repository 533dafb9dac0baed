package models

// Branch is one of the brokerage's office locations.
type Branch string

const (
	BranchDowntown  Branch = "downtown"
	BranchRiverside Branch = "riverside"
	BranchHarbor    Branch = "harbor"
	BranchHillside  Branch = "hillside"
)

// Branches returns every office in display order.
func Branches() []Branch {
	return []Branch{BranchDowntown, BranchRiverside, BranchHarbor, BranchHillside}
}

func (b Branch) Valid() bool {
	switch b {
	case BranchDowntown, BranchRiverside, BranchHarbor, BranchHillside:
		return true
	}
	return false
}

// TrancheStatus tells whether an installment has been paid out.
type TrancheStatus string

const (
	StatusRealized TrancheStatus = "realized"
	StatusForecast TrancheStatus = "forecast"
)

func (s TrancheStatus) Valid() bool {
	return s == StatusRealized || s == StatusForecast
}

// DealSide is the role the brokerage played in a deal.
type DealSide string

const (
	SideSale     DealSide = "sale"
	SidePurchase DealSide = "purchase"
	SideRental   DealSide = "rental"
	SideLease    DealSide = "lease"
)

func (d DealSide) Valid() bool {
	switch d {
	case SideSale, SidePurchase, SideRental, SideLease:
		return true
	}
	return false
}
