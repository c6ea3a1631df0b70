package model

// AssociationTier classifies a pair's lift into a bundle strength bucket.
type AssociationTier string

// Association tiers, strongest first.
const (
	TierVeryStrong AssociationTier = "Very Strong"
	TierStrong     AssociationTier = "Strong"
	TierModerate   AssociationTier = "Moderate"
	TierWeak       AssociationTier = "Weak"
)

// TierScheme maps lift values to tiers and tiers to recommended bundle
// discounts. Boundaries are evaluated top-down and do not overlap.
type TierScheme struct {
	VeryStrongLift float64
	StrongLift     float64
	ModerateLift   float64

	VeryStrongDiscount int
	StrongDiscount     int
	ModerateDiscount   int
	WeakDiscount       int
}

// DefaultTierScheme returns the standard business thresholds:
// lift ≥ 5 is Very Strong (15%), ≥ 3 Strong (10%), ≥ 2 Moderate (7%),
// anything below is Weak with the floor discount.
func DefaultTierScheme() TierScheme {
	return TierScheme{
		VeryStrongLift:     5,
		StrongLift:         3,
		ModerateLift:       2,
		VeryStrongDiscount: 15,
		StrongDiscount:     10,
		ModerateDiscount:   7,
		WeakDiscount:       5,
	}
}

// Classify returns the tier for a lift value.
func (s TierScheme) Classify(lift float64) AssociationTier {
	switch {
	case lift >= s.VeryStrongLift:
		return TierVeryStrong
	case lift >= s.StrongLift:
		return TierStrong
	case lift >= s.ModerateLift:
		return TierModerate
	default:
		return TierWeak
	}
}

// Discount returns the recommended bundle discount percentage for a tier.
func (s TierScheme) Discount(tier AssociationTier) int {
	switch tier {
	case TierVeryStrong:
		return s.VeryStrongDiscount
	case TierStrong:
		return s.StrongDiscount
	case TierModerate:
		return s.ModerateDiscount
	default:
		return s.WeakDiscount
	}
}
