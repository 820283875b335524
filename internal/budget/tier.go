// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package budget

// MaxTier is the highest price tier used by venue listings.
const MaxTier = 4

// PriceTier converts a rupee budget to a 0-4 venue price tier.
func PriceTier(budget int) int {
	switch {
	case budget < 50:
		return 0
	case budget < 100:
		return 1
	case budget < 300:
		return 2
	case budget < 600:
		return 3
	default:
		return MaxTier
	}
}

// PriceUnavailable is displayed for tiers outside 0-4.
const PriceUnavailable = "Price unavailable"

var displayRanges = [...]string{"20-50", "50-100", "100-300", "300-600", "600+"}

// DisplayRange returns the rupee range a price tier corresponds to.
func DisplayRange(tier int) string {
	if !ValidTier(tier) {
		return PriceUnavailable
	}
	return displayRanges[tier]
}

// ValidTier reports whether tier is within 0-4.
func ValidTier(tier int) bool {
	return tier >= 0 && tier <= MaxTier
}
