package logger

import (
	"fmt"
	"sync"
	"testing"
)

func TestRingSince(t *testing.T) {
	ring := NewRing(10)

	first := ring.Append("INFO", "Chat", "first")
	ring.Append("INFO", "Chat", "second")
	ring.Append("WARN", "Chat", "third")

	got := ring.Since(first.Id)
	if len(got) != 2 {
		t.Fatalf("Since(%d) returned %d entries, want 2", first.Id, len(got))
	}
	if got[0].Message != "second" || got[1].Message != "third" {
		t.Errorf("Since returned wrong entries: %v", got)
	}

	if len(ring.Since(0)) != 3 {
		t.Errorf("Since(0) should return all entries")
	}
}

func TestRingEviction(t *testing.T) {
	ring := NewRing(3)

	for i := 0; i < 5; i++ {
		ring.Append("INFO", "Chat", fmt.Sprintf("msg-%d", i))
	}

	if ring.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ring.Len())
	}

	entries := ring.Since(0)
	if entries[0].Message != "msg-2" {
		t.Errorf("oldest surviving entry = %q, want msg-2", entries[0].Message)
	}
	// Ids keep increasing across eviction
	if entries[2].Id != 5 {
		t.Errorf("newest id = %d, want 5", entries[2].Id)
	}
}

func TestRingConcurrentAppend(t *testing.T) {
	ring := NewRing(50)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				ring.Append("INFO", "Chat", "concurrent")
			}
		}()
	}
	wg.Wait()

	if ring.Len() != 50 {
		t.Errorf("Len = %d, want capacity 50", ring.Len())
	}

	// Ids must be unique and increasing
	entries := ring.Since(0)
	for i := 1; i < len(entries); i++ {
		if entries[i].Id <= entries[i-1].Id {
			t.Fatalf("ids not strictly increasing at index %d", i)
		}
	}
}
