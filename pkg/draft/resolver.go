package draft

import (
	"regexp"
	"strings"
)

// Candidate is one entry the user can mention with @name.
type Candidate struct {
	Name string
	Info string
}

// CandidateSource supplies the catalog the resolver filters against.
type CandidateSource interface {
	Candidates() []Candidate
}

// MaxMatches caps how many candidates are offered at once.
const MaxMatches = 6

var triggerPattern = regexp.MustCompile(`@(\S*)$`)

// Key identifies the keys the resolver reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyTab
	KeyEscape
)

// Action tells the caller what a key press resulted in.
type Action int

const (
	ActionNone Action = iota
	ActionSubmit
)

// Resolver tracks a draft query and the @mention picker over it. It is a
// pure state machine: callers feed it text edits, key presses and fetched
// candidates, and read back the resulting state. Moving the host's caret to
// the reported offset is the caller's concern (typically deferred to the
// next frame).
type Resolver struct {
	text       string
	caret      int
	active     bool
	filterTerm string
	highlight  int
	matches    []Candidate
	chosen     []Candidate
	submitting bool
}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Text() string        { return r.text }
func (r *Resolver) Caret() int          { return r.caret }
func (r *Resolver) TriggerActive() bool { return r.active }
func (r *Resolver) FilterTerm() string  { return r.filterTerm }
func (r *Resolver) Highlight() int      { return r.highlight }

func (r *Resolver) Matches() []Candidate {
	out := make([]Candidate, len(r.matches))
	copy(out, r.matches)
	return out
}

func (r *Resolver) Chosen() []Candidate {
	out := make([]Candidate, len(r.chosen))
	copy(out, r.chosen)
	return out
}

func (r *Resolver) ChosenNames() []string {
	names := make([]string, len(r.chosen))
	for i, c := range r.chosen {
		names[i] = c.Name
	}
	return names
}

// SetText records a user edit. The trigger state is re-derived from the text
// before the caret, and chosen references whose token no longer appears in
// the text are dropped.
func (r *Resolver) SetText(text string, caret int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(text) {
		caret = len(text)
	}
	r.text = text
	r.caret = caret

	m := triggerPattern.FindStringSubmatch(text[:caret])
	if m != nil {
		if !r.active || r.filterTerm != m[1] {
			r.active = true
			r.filterTerm = m[1]
			r.matches = nil
			r.highlight = 0
		}
	} else {
		r.deactivate()
	}

	r.pruneChosen()
}

// ApplyCandidates installs fetched candidates, filtered by the term they
// were fetched for. Results for a term the user has since typed past are
// discarded.
func (r *Resolver) ApplyCandidates(term string, items []Candidate) {
	if !r.active || term != r.filterTerm {
		return
	}

	r.matches = filterCandidates(items, r.filterTerm)
	if r.highlight >= len(r.matches) {
		r.highlight = 0
	}
}

// HandleKey processes one key press. The modifier flag covers Ctrl and
// Shift with Enter, which insert a literal newline instead of submitting.
func (r *Resolver) HandleKey(key Key, modifier bool) Action {
	if r.active {
		switch key {
		case KeyUp:
			if len(r.matches) > 0 {
				r.highlight = (r.highlight - 1 + len(r.matches)) % len(r.matches)
			}
		case KeyDown:
			if len(r.matches) > 0 {
				r.highlight = (r.highlight + 1) % len(r.matches)
			}
		case KeyEnter, KeyTab:
			if r.highlight < len(r.matches) {
				r.InsertCandidate(r.matches[r.highlight])
			}
		case KeyEscape:
			r.deactivate()
		}
		return ActionNone
	}

	if key == KeyEnter {
		if modifier {
			r.text = r.text[:r.caret] + "\n" + r.text[r.caret:]
			r.caret++
			return ActionNone
		}
		if r.submitting {
			return ActionNone
		}
		return ActionSubmit
	}
	return ActionNone
}

// InsertCandidate splices the candidate's token into the draft at the
// current mention and records it as chosen. The trigger closes; it
// re-activates only on a later edit.
func (r *Resolver) InsertCandidate(c Candidate) {
	r.text, r.caret = Splice(r.text, r.caret, c.Name)
	r.deactivate()

	for _, existing := range r.chosen {
		if existing.Name == c.Name {
			return
		}
	}
	r.chosen = append(r.chosen, c)
}

// RemoveChosen deletes the reference's tokens from the draft and forgets it.
func (r *Resolver) RemoveChosen(name string) {
	r.text, r.caret = RemoveToken(r.text, r.caret, name)

	kept := r.chosen[:0]
	for _, c := range r.chosen {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	r.chosen = kept
}

// BeginSubmit marks a submission in flight. It reports false when one
// already is, in which case the caller must not submit again.
func (r *Resolver) BeginSubmit() bool {
	if r.submitting {
		return false
	}
	r.submitting = true
	return true
}

func (r *Resolver) FinishSubmit() {
	r.submitting = false
}

func (r *Resolver) deactivate() {
	r.active = false
	r.filterTerm = ""
	r.matches = nil
	r.highlight = 0
}

// pruneChosen keeps the chosen set a subset of the tokens still present in
// the text.
func (r *Resolver) pruneChosen() {
	if len(r.chosen) == 0 {
		return
	}

	present := make(map[string]bool)
	for _, t := range Tokens(r.text) {
		present[t] = true
	}

	kept := r.chosen[:0]
	for _, c := range r.chosen {
		if present[c.Name] {
			kept = append(kept, c)
		}
	}
	r.chosen = kept
}

func filterCandidates(items []Candidate, term string) []Candidate {
	lowered := strings.ToLower(term)
	var out []Candidate
	for _, c := range items {
		if lowered == "" ||
			strings.Contains(strings.ToLower(c.Name), lowered) ||
			strings.Contains(strings.ToLower(c.Info), lowered) {
			out = append(out, c)
			if len(out) == MaxMatches {
				break
			}
		}
	}
	return out
}
