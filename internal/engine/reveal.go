// internal/engine/reveal.go
package engine

import "time"

// RevealSectionCount is the number of staged result sections: platforms,
// timeline, tactics. The UI renders cumulatively up to Sections.
const RevealSectionCount = 3

// RevealProgress is the UI-facing disclosure state layered on top of a
// completed Strategy. It never influences the computed data.
type RevealProgress struct {
	Text     string `json:"text"`
	TextDone bool   `json:"text_done"`
	Sections int    `json:"sections"`
	Done     bool   `json:"done"`
}

// revealRun is one progressive-disclosure pass over a frozen introduction
// string: a character tick until the text is out, a pause, then one section
// per interval. The run stays valid only while it is the workflow's current
// reveal and its sequence token matches; either check failing means a reset
// or a newer strategy superseded it, and the tick must not touch state.
type revealRun struct {
	wf       *Workflow
	seq      int
	text     []rune
	chars    int
	sections int
	timer    *time.Timer
}

// startRevealLocked begins a fresh reveal over the frozen intro. Any prior
// run was already cancelled by cancelTimersLocked. Caller holds w.mu.
func (w *Workflow) startRevealLocked(seq int) {
	run := &revealRun{wf: w, seq: seq, text: w.intro}
	w.reveal = run
	run.scheduleLocked(w.cfg.TypeInterval)
}

// cancelRevealLocked detaches and stops the active run. A tick that already
// fired sees w.reveal != run and returns without mutating anything.
func (w *Workflow) cancelRevealLocked() {
	if w.reveal == nil {
		return
	}
	if w.reveal.timer != nil {
		w.reveal.timer.Stop()
		w.reveal.timer = nil
	}
	w.reveal = nil
}

func (r *revealRun) scheduleLocked(d time.Duration) {
	r.timer = time.AfterFunc(d, r.step)
}

// step is the single tick handler. Ticks are serialized by the workflow
// mutex, so ordering is total and no two ticks interleave.
func (r *revealRun) step() {
	w := r.wf
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.reveal != r || w.genSeq != r.seq {
		return
	}
	r.timer = nil

	switch {
	case r.chars < len(r.text):
		r.chars++
		if r.chars < len(r.text) {
			r.scheduleLocked(w.cfg.TypeInterval)
		} else {
			// Text fully out; short pause before the first section.
			r.scheduleLocked(w.cfg.RevealPause)
		}
	case r.sections < RevealSectionCount:
		r.sections++
		if r.sections < RevealSectionCount {
			r.scheduleLocked(w.cfg.SectionInterval)
		}
	}
}

func (r *revealRun) progressLocked() RevealProgress {
	return RevealProgress{
		Text:     string(r.text[:r.chars]),
		TextDone: r.chars == len(r.text),
		Sections: r.sections,
		Done:     r.chars == len(r.text) && r.sections == RevealSectionCount,
	}
}
