package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finakihub_backend/internals/constants"
)

func TestModulesForTier(t *testing.T) {
	for _, tier := range constants.Tiers {
		mods, ok := ModulesForTier(tier)
		require.True(t, ok, tier)
		assert.Len(t, mods, 4)
		for _, m := range mods {
			assert.Equal(t, tier, m.Level)
			assert.NotEmpty(t, m.ID)
			assert.Positive(t, m.CoinsReward)
		}
	}

	mods, _ := ModulesForTier(constants.TierPrimaria)
	assert.Equal(t, "lemonade_stand", mods[0].ID)
	assert.Equal(t, 50, mods[0].CoinsReward)

	_, ok := ModulesForTier(constants.DeprecatedTierPrimary)
	assert.False(t, ok)
	_, ok = ModulesForTier("universidad")
	assert.False(t, ok)
}
