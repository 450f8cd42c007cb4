// internal/engine/workflow_test.go
package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkflowConfig() WorkflowConfig {
	return WorkflowConfig{
		GenerateDelay:   20 * time.Millisecond,
		TypeInterval:    time.Millisecond,
		RevealPause:     5 * time.Millisecond,
		SectionInterval: 5 * time.Millisecond,
	}
}

func workflowFixture() ([]Product, BrandProfile) {
	products := []Product{
		{ID: "p1", Name: "Dimsum Mentai", Category: "Kuliner", CostPrice: 12000, SellPrice: 25000, Stock: 40, ImageURL: "https://img/p1.jpg"},
		{ID: "p2", Name: "Es Kopi Gula Aren", Category: "Kuliner", CostPrice: 8000, SellPrice: 18000, Stock: 60, ImageURL: "https://img/p2.jpg"},
		{ID: "p3", Name: "Totebag Kanvas", Category: "Fashion", CostPrice: 20000, SellPrice: 45000, Stock: 15, ImageURL: "https://img/p3.jpg"},
	}
	profile := BrandProfile{
		BusinessName: "Dapur Rasa",
		BusinessType: "Kuliner & F&B",
		TargetMarket: TargetMarketLocal,
	}
	return products, profile
}

func TestWorkflowHappyPath(t *testing.T) {
	products, profile := workflowFixture()
	w := NewWorkflow(DefaultCatalog(), testWorkflowConfig())

	require.Equal(t, StateSelecting, w.State())
	require.NoError(t, w.ToggleSelection("p1"))
	require.NoError(t, w.ToggleSelection("p2"))

	require.NoError(t, w.Confirm(products, profile))
	require.Equal(t, StateConfirming, w.State())

	status := w.Status()
	assert.Len(t, status.Snapshot, 2)
	assert.Equal(t, "Kuliner", status.Category)
	assert.Contains(t, status.Intro, "2 produk")
	assert.Contains(t, status.Intro, "Dimsum Mentai")
	assert.Contains(t, status.Intro, "Dapur Rasa")

	require.NoError(t, w.Generate())
	require.Equal(t, StateGenerating, w.State())

	require.Eventually(t, func() bool {
		return w.State() == StateResult
	}, 2*time.Second, 2*time.Millisecond)

	strategy := w.Strategy()
	require.NotNil(t, strategy)
	assert.Len(t, strategy.Platforms, 4)
	assert.Equal(t, "Fokus pada geo-targeting area sekitar", strategy.Tactics[2].Actions[0])

	require.Eventually(t, func() bool {
		progress, ok := w.RevealProgress()
		return ok && progress.Done
	}, 5*time.Second, 2*time.Millisecond)

	progress, ok := w.RevealProgress()
	require.True(t, ok)
	assert.Equal(t, RevealSectionCount, progress.Sections)
	assert.Equal(t, w.Status().Intro, progress.Text)
}

func TestWorkflowConfirmRequiresNonEmptySelection(t *testing.T) {
	products, profile := workflowFixture()
	w := NewWorkflow(DefaultCatalog(), testWorkflowConfig())

	assert.ErrorIs(t, w.Confirm(products, profile), ErrEmptySelection)

	// Ids that do not exist in the live collection do not count either.
	require.NoError(t, w.ToggleSelection("ghost"))
	assert.ErrorIs(t, w.Confirm(products, profile), ErrEmptySelection)
}

func TestWorkflowResetDuringGeneratingNeverProducesStrategy(t *testing.T) {
	products, profile := workflowFixture()
	cfg := testWorkflowConfig()
	cfg.GenerateDelay = 30 * time.Millisecond
	w := NewWorkflow(DefaultCatalog(), cfg)

	require.NoError(t, w.SelectAll([]string{"p1", "p2", "p3"}))
	require.NoError(t, w.Confirm(products, profile))
	require.NoError(t, w.Generate())
	require.Equal(t, StateGenerating, w.State())

	w.Reset()
	assert.Equal(t, StateSelecting, w.State())

	// Outlive the cancelled timer; the stale callback must not land.
	time.Sleep(cfg.GenerateDelay + 20*time.Millisecond)
	assert.Nil(t, w.Strategy())
	assert.Equal(t, StateSelecting, w.State())
	_, ok := w.RevealProgress()
	assert.False(t, ok)
}

func TestWorkflowSnapshotInsulatedFromLiveMutation(t *testing.T) {
	products, profile := workflowFixture()
	w := NewWorkflow(DefaultCatalog(), testWorkflowConfig())

	require.NoError(t, w.ToggleSelection("p1"))
	require.NoError(t, w.Confirm(products, profile))

	products[0].Name = "Renamed"
	products[0].Category = "Elektronik"

	status := w.Status()
	require.Len(t, status.Snapshot, 1)
	assert.Equal(t, "Dimsum Mentai", status.Snapshot[0].Name)
	assert.Equal(t, "Kuliner", status.Category)
}

func TestWorkflowSelectionOnlyMutableWhileSelecting(t *testing.T) {
	products, profile := workflowFixture()
	w := NewWorkflow(DefaultCatalog(), testWorkflowConfig())

	require.NoError(t, w.SelectAll([]string{"p1"}))
	require.NoError(t, w.Confirm(products, profile))

	assert.ErrorIs(t, w.ToggleSelection("p2"), ErrInvalidTransition)
	assert.ErrorIs(t, w.SelectAll([]string{"p2"}), ErrInvalidTransition)
	assert.ErrorIs(t, w.ClearSelection(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Confirm(products, profile), ErrInvalidTransition)
}

func TestWorkflowBackDiscardsSnapshotKeepsSelection(t *testing.T) {
	products, profile := workflowFixture()
	w := NewWorkflow(DefaultCatalog(), testWorkflowConfig())

	require.NoError(t, w.SelectAll([]string{"p1", "p3"}))
	require.NoError(t, w.Confirm(products, profile))
	require.NoError(t, w.Back())

	status := w.Status()
	assert.Equal(t, StateSelecting, status.State)
	assert.Nil(t, status.Snapshot)
	assert.Empty(t, status.Intro)
	assert.ElementsMatch(t, []string{"p1", "p3"}, status.Selected)
}

func TestWorkflowGenerateOnlyFromConfirming(t *testing.T) {
	w := NewWorkflow(DefaultCatalog(), testWorkflowConfig())
	assert.ErrorIs(t, w.Generate(), ErrInvalidTransition)
}

func TestRevealSectionsAdvanceMonotonicallyAfterText(t *testing.T) {
	products, profile := workflowFixture()
	cfg := testWorkflowConfig()
	cfg.GenerateDelay = time.Millisecond
	w := NewWorkflow(DefaultCatalog(), cfg)

	require.NoError(t, w.SelectAll([]string{"p1"}))
	require.NoError(t, w.Confirm(products, profile))
	require.NoError(t, w.Generate())

	require.Eventually(t, func() bool {
		return w.State() == StateResult
	}, 2*time.Second, time.Millisecond)

	lastSections := 0
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		progress, ok := w.RevealProgress()
		require.True(t, ok)

		// No section may appear before the text is fully revealed, and the
		// counter never regresses.
		if progress.Sections > 0 {
			assert.True(t, progress.TextDone)
		}
		assert.GreaterOrEqual(t, progress.Sections, lastSections)
		lastSections = progress.Sections

		if progress.Done {
			break
		}
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, RevealSectionCount, lastSections)
}
