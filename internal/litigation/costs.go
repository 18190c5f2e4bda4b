// Package litigation computes statutory filing costs and projects the
// procedural timeline of a Korean civil money claim.
package litigation

import (
	"strconv"
	"strings"
)

// Stamp-duty brackets (인지대), 민사소송 등 인지법 제2조.
const (
	stampTier1Limit = 10_000_000
	stampTier2Limit = 100_000_000
	stampFloorUnit  = 100
	stampMinimum    = 1_000
)

// Service-fee schedule (송달료): per-delivery rate times a fixed delivery
// count that steps up once for larger claims.
const (
	serviceRate            = 5_200
	serviceUnitsSmall      = 10
	serviceUnitsLarge      = 15
	serviceAmountThreshold = 30_000_000
)

// CostBreakdown is the filing-cost result for a claim. Derived, never stored.
type CostBreakdown struct {
	Principal  int64 `json:"principal"`
	StampDuty  int64 `json:"stamp_duty"`
	ServiceFee int64 `json:"service_fee"`
}

// ParseAmount normalizes a user-entered claim amount. Thousands separators
// and surrounding whitespace are stripped; unparsable or non-positive input
// yields 0. Never errors: forms submit partial input while editing.
func ParseAmount(raw string) int64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	amt, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || amt < 0 {
		return 0
	}
	return amt
}

// ComputeCosts returns the stamp duty and court service fee for a claim
// amount. Rounding order is fixed: percentage-plus-addend first, floor to
// the lower 100, then raise to the 1,000 minimum.
func ComputeCosts(amount int64) CostBreakdown {
	if amount <= 0 {
		return CostBreakdown{}
	}

	var stamp float64
	switch {
	case amount <= stampTier1Limit:
		stamp = float64(amount) * 0.005
	case amount <= stampTier2Limit:
		stamp = float64(amount)*0.0045 + 5_000
	default:
		stamp = float64(amount)*0.004 + 55_000
	}
	duty := int64(stamp) / stampFloorUnit * stampFloorUnit
	if duty < stampMinimum {
		duty = stampMinimum
	}

	units := int64(serviceUnitsSmall)
	if amount > serviceAmountThreshold {
		units = serviceUnitsLarge
	}

	return CostBreakdown{
		Principal:  amount,
		StampDuty:  duty,
		ServiceFee: serviceRate * units,
	}
}

// ComputeCostsInput parses raw form input and computes costs in one step.
func ComputeCostsInput(raw string) CostBreakdown {
	return ComputeCosts(ParseAmount(raw))
}
