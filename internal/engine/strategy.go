// internal/engine/strategy.go
package engine

// TacticGroup is one resolved tactic group of a Strategy.
type TacticGroup struct {
	Category string   `json:"category"`
	Actions  []string `json:"actions"`
}

// Strategy is the derived recommendation set for one generation cycle. It
// is immutable once produced and discarded on workflow reset.
type Strategy struct {
	Platforms []PlatformRecommendation `json:"platforms"`
	Timeline  []TimelinePhase          `json:"timeline"`
	Tactics   []TacticGroup            `json:"tactics"`
}

// RecommendPlatforms maps a category to its ordered platform list. Unknown
// categories resolve to the DefaultCategory list, so the lookup is total.
func (c *Catalog) RecommendPlatforms(category string) []PlatformRecommendation {
	entries, ok := c.Platforms[category]
	if !ok {
		entries = c.Platforms[DefaultCategory]
	}
	out := make([]PlatformRecommendation, len(entries))
	copy(out, entries)
	return out
}

// BuildTimeline produces the fixed three-phase action plan. The category
// argument does not vary the output yet; it is kept so category-specific
// plans can slot in without an interface change.
func (c *Catalog) BuildTimeline(category string) []TimelinePhase {
	out := make([]TimelinePhase, len(c.Timeline))
	for i, phase := range c.Timeline {
		tasks := make([]string, len(phase.Tasks))
		copy(tasks, phase.Tasks)
		out[i] = TimelinePhase{Period: phase.Period, Phase: phase.Phase, Tasks: tasks}
	}
	return out
}

// BuildTactics resolves the tactic templates for a target market. Only the
// actions carrying a Local variant branch; everything else is fixed.
func (c *Catalog) BuildTactics(category, targetMarket string) []TacticGroup {
	out := make([]TacticGroup, len(c.Tactics))
	for i, tpl := range c.Tactics {
		actions := make([]string, len(tpl.Actions))
		for j, action := range tpl.Actions {
			if targetMarket == TargetMarketLocal && action.Local != "" {
				actions[j] = action.Local
			} else {
				actions[j] = action.Default
			}
		}
		out[i] = TacticGroup{Category: tpl.Category, Actions: actions}
	}
	return out
}

// BuildStrategy assembles the full recommendation set for a resolved
// category and target market.
func (c *Catalog) BuildStrategy(category, targetMarket string) *Strategy {
	return &Strategy{
		Platforms: c.RecommendPlatforms(category),
		Timeline:  c.BuildTimeline(category),
		Tactics:   c.BuildTactics(category, targetMarket),
	}
}
