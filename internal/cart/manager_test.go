package cart

import (
	"testing"
	"time"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/price"
)

func TestManagerSessions(t *testing.T) {
	m := NewManager(100, 0, time.Hour)

	id := m.Create()
	store, ok := m.Get(id)
	if !ok {
		t.Fatal("session should exist")
	}

	store.AddItem(Candidate{Title: "Boss", Price: price.FromString("800")})
	again, _ := m.Get(id)
	if again.ItemCount() != 1 {
		t.Fatal("Get should return the same store")
	}

	if _, ok := m.Get("missing"); ok {
		t.Fatal("unknown session should not resolve")
	}

	m.Drop(id)
	if _, ok := m.Get(id); ok {
		t.Fatal("dropped session should be gone")
	}
}

func TestManagerSweep(t *testing.T) {
	m := NewManager(100, 0, time.Minute)

	id := m.Create()
	if removed := m.Sweep(time.Now()); removed != 0 {
		t.Fatalf("fresh session swept: %d", removed)
	}

	if removed := m.Sweep(time.Now().Add(2 * time.Minute)); removed != 1 {
		t.Fatalf("expected 1 swept session, got %d", removed)
	}
	if _, ok := m.Get(id); ok {
		t.Fatal("idle session should be gone after sweep")
	}
}
