package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hookproof/hookproof"
)

func ctx() context.Context { return context.Background() }

func TestMarkSeenFirstAndSecond(t *testing.T) {
	s := New()

	seen, err := s.MarkSeen(ctx(), "sig-a", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if seen {
		t.Fatal("first MarkSeen should report unseen")
	}

	seen, err = s.MarkSeen(ctx(), "sig-a", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !seen {
		t.Fatal("second MarkSeen should report seen")
	}
}

func TestMarkSeenDistinctKeys(t *testing.T) {
	s := New()

	if seen, _ := s.MarkSeen(ctx(), "sig-a", time.Minute); seen {
		t.Fatal("sig-a should be unseen")
	}
	if seen, _ := s.MarkSeen(ctx(), "sig-b", time.Minute); seen {
		t.Fatal("sig-b should be unseen")
	}
}

func TestMarkSeenExpiry(t *testing.T) {
	s := New()
	now := time.Unix(1700000000, 0)
	s.now = func() time.Time { return now }

	if seen, _ := s.MarkSeen(ctx(), "sig-a", time.Minute); seen {
		t.Fatal("should be unseen")
	}

	// Still inside the window.
	now = now.Add(59 * time.Second)
	if seen, _ := s.MarkSeen(ctx(), "sig-a", time.Minute); !seen {
		t.Fatal("should still be seen inside the window")
	}

	// Past the window the entry expires and is recorded fresh.
	now = now.Add(2 * time.Minute)
	if seen, _ := s.MarkSeen(ctx(), "sig-a", time.Minute); seen {
		t.Fatal("expired entry should read as unseen")
	}
}

func TestSweepDropsExpired(t *testing.T) {
	s := New()
	now := time.Unix(1700000000, 0)
	s.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		if _, err := s.MarkSeen(ctx(), key, time.Second); err != nil {
			t.Fatal(err)
		}
	}

	now = now.Add(time.Minute)
	if _, err := s.MarkSeen(ctx(), "d", time.Second); err != nil {
		t.Fatal(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.seen) != 1 {
		t.Fatalf("expected only the live entry after sweep, got %d", len(s.seen))
	}
}

func TestClosed(t *testing.T) {
	s := New()
	if err := s.Ping(ctx()); err != nil {
		t.Fatalf("fresh store should ping: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if err := s.Ping(ctx()); !errors.Is(err, hookproof.ErrStoreClosed) {
		t.Fatalf("expected ErrStoreClosed from Ping, got %v", err)
	}
	if _, err := s.MarkSeen(ctx(), "sig", time.Minute); !errors.Is(err, hookproof.ErrStoreClosed) {
		t.Fatalf("expected ErrStoreClosed from MarkSeen, got %v", err)
	}
}
