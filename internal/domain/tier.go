package domain

import "strings"

// Tier is a coarse task category.
type Tier string

const (
	TierLow  Tier = "LOW"  // Routine work
	TierMid  Tier = "MID"  // Regular work
	TierHigh Tier = "HIGH" // Demanding or urgent work

	// TierAuto asks for classification on task creation.
	// It is never stored on a task.
	TierAuto Tier = "AUTO"
)

// AllTiers returns the storable tiers, lowest first.
func AllTiers() []Tier {
	return []Tier{TierLow, TierMid, TierHigh}
}

// IsValid returns true if the tier can be stored on a task.
func (t Tier) IsValid() bool {
	switch t {
	case TierLow, TierMid, TierHigh:
		return true
	case TierAuto:
		return false
	default:
		return false
	}
}

// BaseWeight returns the fixed base weight of the tier.
// Unrecognized tiers weigh the same as MID.
func (t Tier) BaseWeight() float64 {
	switch t {
	case TierLow:
		return 2
	case TierMid:
		return 5
	case TierHigh:
		return 8
	case TierAuto:
		return 5
	default:
		return 5
	}
}

// ParseTier parses a tier name case-insensitively.
// An empty string parses as TierAuto.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(strings.ToUpper(strings.TrimSpace(s))); t {
	case "":
		return TierAuto, nil
	case TierLow, TierMid, TierHigh, TierAuto:
		return t, nil
	default:
		return "", ErrInvalidTier
	}
}

// TierFilter restricts a calculation to one tier, or to none.
type TierFilter string

// TierFilterAll matches every tier.
const TierFilterAll TierFilter = "ALL"

// FilterFor returns the filter matching exactly the given tier.
func FilterFor(t Tier) TierFilter {
	return TierFilter(t)
}

// Matches returns true if a task of the given tier passes the filter.
func (f TierFilter) Matches(t Tier) bool {
	switch f {
	case TierFilterAll, "":
		return true
	default:
		return Tier(f) == t
	}
}

// ParseTierFilter parses a filter name case-insensitively.
// An empty string parses as TierFilterAll.
func ParseTierFilter(s string) (TierFilter, error) {
	switch f := TierFilter(strings.ToUpper(strings.TrimSpace(s))); f {
	case "", TierFilterAll:
		return TierFilterAll, nil
	case TierFilter(TierLow), TierFilter(TierMid), TierFilter(TierHigh):
		return f, nil
	default:
		return "", ErrInvalidTierFilter
	}
}
