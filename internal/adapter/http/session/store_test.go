package session

import (
	"errors"
	"testing"
	"time"

	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/sankey"
)

func TestStoreCreateAndWith(t *testing.T) {
	store := NewStore(time.Hour)

	id := store.Create(sankey.NewState())
	if id == "" {
		t.Fatal("expected a non-empty session id")
	}

	err := store.With(id, func(state *sankey.State) error {
		state.LeftFocus["Revenus"] = 2
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The mutation is visible on the next access.
	err = store.With(id, func(state *sankey.State) error {
		if state.LeftFocus["Revenus"] != 2 {
			t.Errorf("focus = %d, want 2", state.LeftFocus["Revenus"])
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStoreWithUnknownSession(t *testing.T) {
	store := NewStore(time.Hour)

	err := store.With("missing", func(*sankey.State) error { return nil })
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(time.Hour)
	id := store.Create(sankey.NewState())

	store.Delete(id)

	if store.Len() != 0 {
		t.Errorf("len = %d, want 0", store.Len())
	}
	err := store.With(id, func(*sankey.State) error { return nil })
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour)
	store.now = func() time.Time { return now }

	stale := store.Create(sankey.NewState())
	now = now.Add(30 * time.Minute)
	fresh := store.Create(sankey.NewState())

	// Touching a session extends its life.
	now = now.Add(45 * time.Minute)
	if err := store.With(fresh, func(*sankey.State) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// By now the first session has been idle for 75 minutes.
	if err := store.With(stale, func(*sankey.State) error { return nil }); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("stale session err = %v, want ErrSessionNotFound", err)
	}
	if store.Len() != 1 {
		t.Errorf("len = %d, want 1 surviving session", store.Len())
	}
}

func TestStoreZeroTTLNeverEvicts(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(0)
	store.now = func() time.Time { return now }

	id := store.Create(sankey.NewState())
	now = now.Add(1000 * time.Hour)

	if err := store.With(id, func(*sankey.State) error { return nil }); err != nil {
		t.Errorf("unexpected eviction: %v", err)
	}
}

func TestULIDGeneratorProducesUniqueIDs(t *testing.T) {
	gen := NewULIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if len(id) != 26 {
			t.Fatalf("id %q is not a ULID", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
