package draft

import (
	"reflect"
	"testing"
)

var catalog = []Candidate{
	{Name: "policy-gdpr", Info: "EU data protection"},
	{Name: "policy-ccpa", Info: "California privacy"},
	{Name: "handbook", Info: "employee handbook"},
	{Name: "audit-2025", Info: "annual audit report"},
	{Name: "iso-27001", Info: "security standard"},
	{Name: "soc2", Info: "service organization controls"},
	{Name: "pci-dss", Info: "payment card security"},
}

func TestTriggerDetection(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		caret      int
		wantActive bool
		wantTerm   string
	}{
		{"bare at-sign", "ask @", 5, true, ""},
		{"partial term", "ask @pol", 8, true, "pol"},
		{"whitespace after at-sign deactivates", "ask @pol x", 10, false, ""},
		{"caret before the at-sign", "ask @pol", 3, false, ""},
		{"no at-sign", "plain", 5, false, ""},
		{"at-sign mid-word still triggers", "mail me@ex", 10, true, "ex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			r.SetText(tt.text, tt.caret)
			if r.TriggerActive() != tt.wantActive {
				t.Errorf("active = %v, want %v", r.TriggerActive(), tt.wantActive)
			}
			if r.FilterTerm() != tt.wantTerm {
				t.Errorf("term = %q, want %q", r.FilterTerm(), tt.wantTerm)
			}
		})
	}
}

func TestCandidateFiltering(t *testing.T) {
	r := NewResolver()
	r.SetText("check @Policy", 13)
	r.ApplyCandidates("Policy", catalog)

	got := r.Matches()
	want := []Candidate{catalog[0], catalog[1]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("matches = %v, want %v", got, want)
	}
}

func TestCandidateFilteringMatchesInfoText(t *testing.T) {
	r := NewResolver()
	r.SetText("@privacy", 8)
	r.ApplyCandidates("privacy", catalog)

	got := r.Matches()
	if len(got) != 1 || got[0].Name != "policy-ccpa" {
		t.Errorf("matches = %v, want the entry whose info mentions privacy", got)
	}
}

func TestCandidateCap(t *testing.T) {
	r := NewResolver()
	r.SetText("@", 1)
	r.ApplyCandidates("", catalog)

	if got := len(r.Matches()); got != MaxMatches {
		t.Errorf("matches = %d, want %d", got, MaxMatches)
	}
}

func TestStaleCandidatesDiscarded(t *testing.T) {
	r := NewResolver()
	r.SetText("@pol", 4)
	r.SetText("@policy-g", 9)

	// Late reply for the term the user typed past.
	r.ApplyCandidates("pol", catalog)
	if got := len(r.Matches()); got != 0 {
		t.Errorf("stale candidates should be discarded, got %d", got)
	}

	r.ApplyCandidates("policy-g", catalog)
	if got := r.Matches(); len(got) != 1 || got[0].Name != "policy-gdpr" {
		t.Errorf("matches = %v", got)
	}
}

func TestKeyboardNavigationAndCommit(t *testing.T) {
	r := NewResolver()
	r.SetText("use @policy", 11)
	r.ApplyCandidates("policy", catalog)

	r.HandleKey(KeyDown, false)
	if r.Highlight() != 1 {
		t.Fatalf("highlight = %d, want 1", r.Highlight())
	}
	r.HandleKey(KeyDown, false)
	if r.Highlight() != 0 {
		t.Fatalf("highlight should wrap to 0, got %d", r.Highlight())
	}
	r.HandleKey(KeyUp, false)
	if r.Highlight() != 1 {
		t.Fatalf("highlight should wrap backwards to 1, got %d", r.Highlight())
	}

	if action := r.HandleKey(KeyEnter, false); action != ActionNone {
		t.Fatalf("commit should not submit")
	}
	if r.Text() != "use @policy-ccpa" {
		t.Errorf("text = %q", r.Text())
	}
	if r.TriggerActive() {
		t.Error("trigger should close after commit")
	}
	if names := r.ChosenNames(); !reflect.DeepEqual(names, []string{"policy-ccpa"}) {
		t.Errorf("chosen = %v", names)
	}
}

func TestEscapeClosesWithoutEditing(t *testing.T) {
	r := NewResolver()
	r.SetText("use @pol", 8)
	r.ApplyCandidates("pol", catalog)

	r.HandleKey(KeyEscape, false)
	if r.TriggerActive() {
		t.Error("trigger should be inactive")
	}
	if r.Text() != "use @pol" {
		t.Errorf("text changed to %q", r.Text())
	}
}

func TestEnterSubmitsWhenInactive(t *testing.T) {
	r := NewResolver()
	r.SetText("a question", 10)

	if action := r.HandleKey(KeyEnter, false); action != ActionSubmit {
		t.Fatalf("action = %v, want submit", action)
	}
}

func TestModifiedEnterInsertsNewline(t *testing.T) {
	r := NewResolver()
	r.SetText("ab", 1)

	if action := r.HandleKey(KeyEnter, true); action != ActionNone {
		t.Fatalf("modified enter must not submit")
	}
	if r.Text() != "a\nb" {
		t.Errorf("text = %q, want %q", r.Text(), "a\nb")
	}
	if r.Caret() != 2 {
		t.Errorf("caret = %d, want 2", r.Caret())
	}
}

func TestSubmitGuard(t *testing.T) {
	r := NewResolver()
	r.SetText("q", 1)

	if !r.BeginSubmit() {
		t.Fatal("first submit should be allowed")
	}
	if r.BeginSubmit() {
		t.Fatal("second submit must be blocked while one is in flight")
	}
	if action := r.HandleKey(KeyEnter, false); action != ActionNone {
		t.Fatal("enter must not submit while a submission is in flight")
	}

	r.FinishSubmit()
	if !r.BeginSubmit() {
		t.Fatal("submit should be allowed again after completion")
	}
}

func TestChosenPrunedWhenTokenEdited(t *testing.T) {
	r := NewResolver()
	r.SetText("see @handbook", 13)
	r.ApplyCandidates("handbook", catalog)
	r.HandleKey(KeyEnter, false)

	if len(r.Chosen()) != 1 {
		t.Fatalf("chosen = %v", r.Chosen())
	}

	// User deletes part of the token by hand.
	r.SetText("see @handb", 10)
	if len(r.Chosen()) != 0 {
		t.Errorf("chosen should be pruned once its token is gone, got %v", r.Chosen())
	}
}

func TestRemoveChosen(t *testing.T) {
	r := NewResolver()
	r.SetText("see @handbook", 13)
	r.ApplyCandidates("handbook", catalog)
	r.HandleKey(KeyEnter, false)

	r.RemoveChosen("handbook")
	if r.Text() != "see " {
		t.Errorf("text = %q", r.Text())
	}
	if len(r.Chosen()) != 0 {
		t.Errorf("chosen = %v", r.Chosen())
	}
}

func TestInsertCandidateIsIdempotentPerName(t *testing.T) {
	r := NewResolver()
	r.SetText("a @soc", 6)
	r.InsertCandidate(Candidate{Name: "soc2"})
	r.SetText(r.Text()+" and @soc", len(r.Text())+9)
	r.InsertCandidate(Candidate{Name: "soc2"})

	if got := len(r.Chosen()); got != 1 {
		t.Errorf("chosen should hold one entry per name, got %d", got)
	}
}
