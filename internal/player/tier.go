package player

import (
	"math"
	"strconv"
	"strings"
)

// Tier is a rostership band used to colour a card.
type Tier int

const (
	// TierUnknown is used when the rostered value is missing or not a number.
	TierUnknown Tier = iota
	TierLow
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// RosterTier classifies a rostered percentage. Values at or above high are
// TierHigh, at or above medium TierMedium, anything else TierLow.
// A trailing "%" is allowed.
func RosterTier(value string, high, medium float64) Tier {
	pct, ok := ParsePercent(value)
	if !ok {
		return TierUnknown
	}
	switch {
	case pct >= high:
		return TierHigh
	case pct >= medium:
		return TierMedium
	default:
		return TierLow
	}
}

// ParsePercent parses a number with an optional trailing "%".
func ParsePercent(value string) (float64, bool) {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
