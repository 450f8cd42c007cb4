// internal/engine/workflow.go
package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type WorkflowState string

const (
	StateSelecting  WorkflowState = "selecting"
	StateConfirming WorkflowState = "confirming"
	StateGenerating WorkflowState = "generating"
	StateResult     WorkflowState = "result"
)

var (
	ErrEmptySelection    = errors.New("no products selected")
	ErrInvalidTransition = errors.New("invalid workflow transition")
)

// WorkflowConfig holds the pacing intervals of the generation and reveal
// timers. The values are UX pacing only, so they are configuration rather
// than constants.
type WorkflowConfig struct {
	GenerateDelay   time.Duration
	TypeInterval    time.Duration
	RevealPause     time.Duration
	SectionInterval time.Duration
}

func DefaultWorkflowConfig() WorkflowConfig {
	return WorkflowConfig{
		GenerateDelay:   3 * time.Second,
		TypeInterval:    20 * time.Millisecond,
		RevealPause:     500 * time.Millisecond,
		SectionInterval: 800 * time.Millisecond,
	}
}

// Workflow is the staged strategy-generation controller for one user
// session: Selecting -> Confirming -> Generating -> Result, back to
// Selecting on reset. It owns every timer it starts; genSeq is the
// cancellation token that keeps a superseded timer callback from ever
// touching state.
type Workflow struct {
	mu      sync.Mutex
	cfg     WorkflowConfig
	catalog *Catalog

	state    WorkflowState
	selected map[string]bool

	snapshot []Product
	profile  BrandProfile
	category string
	intro    []rune
	strategy *Strategy

	genSeq   int
	genTimer *time.Timer
	reveal   *revealRun
}

// WorkflowStatus is a point-in-time view of the controller, safe to hand
// out after the lock is released.
type WorkflowStatus struct {
	State    WorkflowState   `json:"state"`
	Selected []string        `json:"selected"`
	Snapshot []Product       `json:"snapshot,omitempty"`
	Category string          `json:"category,omitempty"`
	Intro    string          `json:"intro,omitempty"`
	Strategy *Strategy       `json:"strategy,omitempty"`
	Reveal   *RevealProgress `json:"reveal,omitempty"`
}

func NewWorkflow(catalog *Catalog, cfg WorkflowConfig) *Workflow {
	return &Workflow{
		cfg:      cfg,
		catalog:  catalog,
		state:    StateSelecting,
		selected: make(map[string]bool),
	}
}

func (w *Workflow) State() WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// ToggleSelection flips one product id in or out of the selection. Only
// valid while Selecting.
func (w *Workflow) ToggleSelection(productID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSelecting {
		return ErrInvalidTransition
	}
	if w.selected[productID] {
		delete(w.selected, productID)
	} else {
		w.selected[productID] = true
	}
	return nil
}

// SelectAll replaces the selection with every given product id.
func (w *Workflow) SelectAll(productIDs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSelecting {
		return ErrInvalidTransition
	}
	w.selected = make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		w.selected[id] = true
	}
	return nil
}

func (w *Workflow) ClearSelection() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSelecting {
		return ErrInvalidTransition
	}
	w.selected = make(map[string]bool)
	return nil
}

// Confirm snapshots the selected subset of the live collection and freezes
// everything downstream computation needs: the analyzed product list, the
// dominant category, and the templated introduction. Later edits to the
// live collection cannot change what was analyzed.
func (w *Workflow) Confirm(products []Product, profile BrandProfile) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSelecting {
		return ErrInvalidTransition
	}

	snapshot := make([]Product, 0, len(w.selected))
	for _, p := range products {
		if w.selected[p.ID] {
			snapshot = append(snapshot, p)
		}
	}
	if len(snapshot) == 0 {
		return ErrEmptySelection
	}

	w.snapshot = snapshot
	w.profile = profile
	w.category = ResolveDominantCategory(snapshot)
	w.intro = []rune(buildIntro(snapshot, w.category, w.targetMarketLocked(), profile.BusinessName))
	w.state = StateConfirming
	return nil
}

// Back returns from Confirming to Selecting, discarding the snapshot but
// keeping the selection so the user can adjust it.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateConfirming {
		return ErrInvalidTransition
	}
	w.snapshot = nil
	w.category = ""
	w.intro = nil
	w.state = StateSelecting
	return nil
}

// Generate starts the single cancellable analysis timer. Any prior pending
// timer is cancelled first, so at most one is ever outstanding.
func (w *Workflow) Generate() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateConfirming {
		return ErrInvalidTransition
	}
	w.cancelTimersLocked()
	w.state = StateGenerating
	seq := w.genSeq
	w.genTimer = time.AfterFunc(w.cfg.GenerateDelay, func() { w.finishGeneration(seq) })
	return nil
}

func (w *Workflow) finishGeneration(seq int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	// A reset or a newer generation invalidated this timer between firing
	// and acquiring the lock.
	if seq != w.genSeq || w.state != StateGenerating {
		return
	}
	w.genTimer = nil
	w.strategy = w.catalog.BuildStrategy(w.category, w.targetMarketLocked())
	w.state = StateResult
	w.startRevealLocked(seq)
}

// Reset cancels all pending timers, discards selection, snapshot and
// strategy, and returns to Selecting. Valid from every state.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelTimersLocked()
	w.state = StateSelecting
	w.selected = make(map[string]bool)
	w.snapshot = nil
	w.profile = BrandProfile{}
	w.category = ""
	w.intro = nil
	w.strategy = nil
}

// Status returns a consistent snapshot of the controller for rendering.
func (w *Workflow) Status() WorkflowStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	selected := make([]string, 0, len(w.selected))
	for id := range w.selected {
		selected = append(selected, id)
	}
	sort.Strings(selected)

	status := WorkflowStatus{
		State:    w.state,
		Selected: selected,
		Category: w.category,
		Intro:    string(w.intro),
	}
	if w.snapshot != nil {
		status.Snapshot = make([]Product, len(w.snapshot))
		copy(status.Snapshot, w.snapshot)
	}
	if w.strategy != nil {
		status.Strategy = w.strategy
	}
	if w.reveal != nil {
		progress := w.reveal.progressLocked()
		status.Reveal = &progress
	}
	return status
}

// Strategy returns the computed strategy, or nil outside the Result state.
func (w *Workflow) Strategy() *Strategy {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.strategy
}

// RevealProgress reports the current progressive-disclosure state. The
// second return is false when no reveal run is active.
func (w *Workflow) RevealProgress() (RevealProgress, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.reveal == nil {
		return RevealProgress{}, false
	}
	return w.reveal.progressLocked(), true
}

// cancelTimersLocked stops the generation timer and the reveal run and
// bumps the sequence token so any callback already fired and waiting on
// the lock becomes a no-op. Callers must hold w.mu.
func (w *Workflow) cancelTimersLocked() {
	w.genSeq++
	if w.genTimer != nil {
		w.genTimer.Stop()
		w.genTimer = nil
	}
	w.cancelRevealLocked()
}

func (w *Workflow) targetMarketLocked() string {
	if w.profile.TargetMarket == "" {
		return TargetMarketLocal
	}
	return w.profile.TargetMarket
}

func buildIntro(snapshot []Product, category, targetMarket, businessName string) string {
	if businessName == "" {
		businessName = "bisnis Anda"
	}
	names := make([]string, 0, len(snapshot))
	for _, p := range snapshot {
		names = append(names, p.Name)
	}
	return fmt.Sprintf(
		"Berdasarkan analisis %d produk (%s) dalam kategori %s dan target pasar %s, berikut strategi yang direkomendasikan untuk %s:",
		len(snapshot), strings.Join(names, ", "), category, targetMarket, businessName,
	)
}
