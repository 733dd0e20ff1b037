package domain

import "fmt"

// Tier is a subscription level. Tiers are strictly ordered: each tier
// includes every capability of the tiers below it.
//
// Tier is a closed enum on purpose: adding a tier must force every
// policy table keyed by Tier to be revisited, which string comparison
// would silently skip.
type Tier int

const (
	// TierBasic is the free tier. No AI processing.
	TierBasic Tier = iota

	// TierPlus adds AI categorization (fixed taxonomy) and tags.
	TierPlus

	// TierPro adds generated titles and free-form categories.
	TierPro
)

// tierNames maps tiers to their wire representation.
var tierNames = map[Tier]string{
	TierBasic: "basic",
	TierPlus:  "plus",
	TierPro:   "pro",
}

// String returns the wire name of the tier.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}

	return fmt.Sprintf("tier(%d)", int(t))
}

// AtLeast reports whether t grants the capabilities of other.
func (t Tier) AtLeast(other Tier) bool {
	return t >= other
}

// ParseTier parses a wire tier name. Unknown names are rejected rather
// than defaulted; defaulting to basic is the caller's decision.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "basic":
		return TierBasic, nil
	case "plus":
		return TierPlus, nil
	case "pro":
		return TierPro, nil
	default:
		return TierBasic, fmt.Errorf("%w: unknown tier %q", ErrValidation, s)
	}
}

// Tiers returns all tiers in ascending order.
func Tiers() []Tier {
	return []Tier{TierBasic, TierPlus, TierPro}
}
