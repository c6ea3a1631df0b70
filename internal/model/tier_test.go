package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierScheme_Classify(t *testing.T) {
	scheme := DefaultTierScheme()

	tests := []struct {
		name         string
		lift         float64
		wantTier     AssociationTier
		wantDiscount int
	}{
		{"very strong", 6.0, TierVeryStrong, 15},
		{"boundary very strong", 5.0, TierVeryStrong, 15},
		{"strong", 3.5, TierStrong, 10},
		{"moderate", 2.2, TierModerate, 7},
		{"weak", 1.2, TierWeak, 5},
		{"no association", 0.5, TierWeak, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := scheme.Classify(tt.lift)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantDiscount, scheme.Discount(tier))
		})
	}
}
