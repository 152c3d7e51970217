package draft

import "testing"

func TestSelectMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want Settings
	}{
		{ModeSearch, Settings{UseOnlineContext: true, UseDatabase: false}},
		{ModeResearch, Settings{UseOnlineContext: false, UseDatabase: true}},
		{ModeDeep, Settings{UseOnlineContext: true, UseDatabase: true}},
	}

	for _, tt := range tests {
		if got := SelectMode(tt.mode); got != tt.want {
			t.Errorf("SelectMode(%v) = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
}

func TestModeOf(t *testing.T) {
	tests := []struct {
		settings Settings
		want     Mode
	}{
		{Settings{UseOnlineContext: true, UseDatabase: false}, ModeSearch},
		{Settings{UseOnlineContext: false, UseDatabase: true}, ModeResearch},
		{Settings{UseOnlineContext: true, UseDatabase: true}, ModeDeep},
		// Both-off has no mode of its own and reads as the default.
		{Settings{UseOnlineContext: false, UseDatabase: false}, ModeResearch},
	}

	for _, tt := range tests {
		if got := ModeOf(tt.settings); got != tt.want {
			t.Errorf("ModeOf(%+v) = %v, want %v", tt.settings, got, tt.want)
		}
	}
}

func TestSelectThenDeriveRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeSearch, ModeResearch, ModeDeep} {
		if got := ModeOf(SelectMode(m)); got != m {
			t.Errorf("round trip for %v gave %v", m, got)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	if ModeOf(DefaultSettings()) != ModeResearch {
		t.Error("default settings should read as research")
	}
}
