package litigation

import "time"

// OverdueInterest computes simple interest on a principal between two dates
// at an annual percentage rate, floored to whole currency units. The second
// return is false when the period is not strictly positive, in which case
// the interest is zero.
func OverdueInterest(principal int64, annualRatePct float64, from, to time.Time) (int64, bool) {
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return 0, false
	}
	interest := float64(principal) * (annualRatePct / 100) * (float64(days) / 365)
	return int64(interest), true
}
