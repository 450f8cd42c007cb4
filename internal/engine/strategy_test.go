// internal/engine/strategy_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendPlatformsReturnsFourEntriesForEveryCategory(t *testing.T) {
	catalog := DefaultCatalog()

	for category := range catalog.Platforms {
		entries := catalog.RecommendPlatforms(category)
		assert.Len(t, entries, 4, "category %s", category)
		for _, e := range entries {
			assert.NotEmpty(t, e.Name)
			assert.NotEmpty(t, e.Rationale)
		}
	}
}

func TestRecommendPlatformsFallsBackForUnknownCategory(t *testing.T) {
	catalog := DefaultCatalog()

	got := catalog.RecommendPlatforms("Otomotif")
	require.Len(t, got, 4)
	assert.Equal(t, catalog.RecommendPlatforms(DefaultCategory), got)
}

func TestBuildTimelineHasThreeFixedPhases(t *testing.T) {
	catalog := DefaultCatalog()

	timeline := catalog.BuildTimeline("Fashion")
	require.Len(t, timeline, 3)
	assert.Equal(t, "Setup", timeline[0].Phase)
	assert.Equal(t, "Growth", timeline[1].Phase)
	assert.Equal(t, "Scaling", timeline[2].Phase)
	for _, phase := range timeline {
		assert.Len(t, phase.Tasks, 4)
		assert.NotEmpty(t, phase.Period)
	}

	// The category argument does not vary the plan.
	assert.Equal(t, timeline, catalog.BuildTimeline("Kuliner"))
}

func TestBuildTacticsBranchesOnTargetMarket(t *testing.T) {
	catalog := DefaultCatalog()

	local := catalog.BuildTactics("Fashion", TargetMarketLocal)
	national := catalog.BuildTactics("Fashion", TargetMarketNational)
	require.Len(t, local, 3)
	require.Len(t, national, 3)

	assert.Equal(t, "Fokus pada geo-targeting area sekitar", local[2].Actions[0])
	assert.Equal(t, "Expand jangkauan dengan ads nasional", national[2].Actions[0])

	// Everything but the acquisition branch is identical.
	assert.Equal(t, local[0], national[0])
	assert.Equal(t, local[1], national[1])
	assert.Equal(t, local[2].Actions[1:], national[2].Actions[1:])

	// Any non-local market takes the national branch.
	international := catalog.BuildTactics("Fashion", TargetMarketInternational)
	assert.Equal(t, national, international)
}

func TestBuildStrategyWellFormedForDefaultCategory(t *testing.T) {
	catalog := DefaultCatalog()

	strategy := catalog.BuildStrategy(DefaultCategory, TargetMarketLocal)
	require.NotNil(t, strategy)
	assert.Len(t, strategy.Platforms, 4)
	assert.Len(t, strategy.Timeline, 3)
	assert.Len(t, strategy.Tactics, 3)
}

func TestRecommendPlatformsReturnsCopies(t *testing.T) {
	catalog := DefaultCatalog()

	first := catalog.RecommendPlatforms("Kuliner")
	first[0].Name = "mutated"
	second := catalog.RecommendPlatforms("Kuliner")
	assert.Equal(t, "TikTok", second[0].Name)
}
