package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tier
		wantErr bool
	}{
		{name: "upper", input: "HIGH", want: TierHigh},
		{name: "lower", input: "low", want: TierLow},
		{name: "padded", input: " Mid ", want: TierMid},
		{name: "auto", input: "auto", want: TierAuto},
		{name: "empty means auto", input: "", want: TierAuto},
		{name: "unknown", input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTier(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_IsValid(t *testing.T) {
	for _, tier := range AllTiers() {
		assert.True(t, tier.IsValid(), tier)
	}
	assert.False(t, TierAuto.IsValid())
	assert.False(t, Tier("EPIC").IsValid())
}

func TestTier_BaseWeight(t *testing.T) {
	assert.InDelta(t, 2.0, TierLow.BaseWeight(), 0)
	assert.InDelta(t, 5.0, TierMid.BaseWeight(), 0)
	assert.InDelta(t, 8.0, TierHigh.BaseWeight(), 0)
	assert.InDelta(t, 5.0, Tier("").BaseWeight(), 0)
}

func TestParseTierFilter(t *testing.T) {
	f, err := ParseTierFilter("")
	require.NoError(t, err)
	assert.Equal(t, TierFilterAll, f)

	f, err = ParseTierFilter("high")
	require.NoError(t, err)
	assert.Equal(t, FilterFor(TierHigh), f)

	_, err = ParseTierFilter("AUTO")
	assert.ErrorIs(t, err, ErrInvalidTierFilter)
}

func TestTierFilter_Matches(t *testing.T) {
	assert.True(t, TierFilterAll.Matches(TierLow))
	assert.True(t, TierFilter("").Matches(TierHigh))
	assert.True(t, FilterFor(TierMid).Matches(TierMid))
	assert.False(t, FilterFor(TierMid).Matches(TierHigh))
}
