package session

import (
	"testing"

	"github.com/hupe1980/flowstore/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*InMemoryStore)(nil)

func TestInMemorySessionStore_GetCreatesLazily(t *testing.T) {
	store := NewInMemoryStore()
	sess, err := store.Get("s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.ID != "s1" {
		t.Fatalf("expected id s1, got %q", sess.ID)
	}
}

func TestInMemorySessionStore_EmptyIDGenerated(t *testing.T) {
	store := NewInMemoryStore()
	sess, err := store.Create("")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestInMemorySessionStore_CloneIsolation(t *testing.T) {
	store := NewInMemoryStore()
	first, _ := store.Get("s1")
	first.SetState("k", "v")
	second, _ := store.Get("s1")
	if _, ok := second.GetState("k"); ok {
		t.Fatalf("expected clone isolation, state leaked into store")
	}
}

func TestInMemorySessionStore_DeleteIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	if _, err := store.Create("s1"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete("s1"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
}
