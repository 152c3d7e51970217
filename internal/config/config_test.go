package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ANSWER_SERVICE_URL",
		"ANSWER_RETRY_ATTEMPTS",
		"APP_PORT",
		"LOG_RING_CAPACITY",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	// The answering backend mounts under /api; the client appends /query
	// and /memory to this base.
	if got, want := cfg.Answer.BaseURL, "http://localhost:8000/api"; got != want {
		t.Errorf("Answer.BaseURL = %q, want %q", got, want)
	}
	if got, want := cfg.Answer.RetryAttempts, 3; got != want {
		t.Errorf("Answer.RetryAttempts = %d, want %d", got, want)
	}
	if got, want := cfg.Answer.RequestTimeout, 120*time.Second; got != want {
		t.Errorf("Answer.RequestTimeout = %v, want %v", got, want)
	}
	if got, want := cfg.App.Port, "5000"; got != want {
		t.Errorf("App.Port = %q, want %q", got, want)
	}
	if got, want := cfg.App.LogRingCapacity, 100; got != want {
		t.Errorf("App.LogRingCapacity = %d, want %d", got, want)
	}
}
