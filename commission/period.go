package commission

import "fmt"

// Range is an inclusive month window inside one calendar year.
type Range struct {
	StartMonth int `json:"start_month"`
	EndMonth   int `json:"end_month"`
	Year       int `json:"year"`
}

// FullYear covers January through December of year.
func FullYear(year int) Range {
	return Range{StartMonth: 1, EndMonth: 12, Year: year}
}

// Contains reports whether (year, month) falls inside the window.
func (r Range) Contains(year, month int) bool {
	return year == r.Year && month >= r.StartMonth && month <= r.EndMonth
}

// Months lists the calendar months of the window, ignoring out-of-bounds ends.
func (r Range) Months() []int {
	var months []int
	for m := max(r.StartMonth, 1); m <= min(r.EndMonth, 12); m++ {
		months = append(months, m)
	}
	return months
}

// Previous returns the window of equal length immediately before r. When
// that window would start before January it wraps into the prior year and
// ends in December there.
func (r Range) Previous() Range {
	n := r.EndMonth - r.StartMonth + 1
	if r.StartMonth-n < 1 {
		return Range{StartMonth: 13 - n, EndMonth: 12, Year: r.Year - 1}
	}
	return Range{StartMonth: r.StartMonth - n, EndMonth: r.StartMonth - 1, Year: r.Year}
}

func (r Range) String() string {
	return fmt.Sprintf("%04d-%02d..%02d", r.Year, r.StartMonth, r.EndMonth)
}
