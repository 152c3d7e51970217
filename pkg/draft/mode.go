package draft

// Settings are the retrieval toggles a query is submitted with.
type Settings struct {
	UseOnlineContext bool
	UseDatabase      bool
}

// Mode names a coherent pair of retrieval toggles.
type Mode int

const (
	// ModeSearch consults online context only.
	ModeSearch Mode = iota
	// ModeResearch consults the document database only. It is the default.
	ModeResearch
	// ModeDeep consults both.
	ModeDeep
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeDeep:
		return "deep"
	default:
		return "research"
	}
}

// DefaultSettings matches ModeResearch.
func DefaultSettings() Settings {
	return Settings{UseOnlineContext: false, UseDatabase: true}
}

// SelectMode returns the settings for a mode, overwriting both flags at
// once so the pair can never drift into an unnamed combination.
func SelectMode(m Mode) Settings {
	switch m {
	case ModeSearch:
		return Settings{UseOnlineContext: true, UseDatabase: false}
	case ModeDeep:
		return Settings{UseOnlineContext: true, UseDatabase: true}
	default:
		return Settings{UseOnlineContext: false, UseDatabase: true}
	}
}

// ModeOf derives the mode from a pair of flags. The both-off pair has no
// mode of its own and reads as Research.
func ModeOf(s Settings) Mode {
	switch {
	case s.UseOnlineContext && s.UseDatabase:
		return ModeDeep
	case s.UseOnlineContext:
		return ModeSearch
	default:
		return ModeResearch
	}
}
