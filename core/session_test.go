package core

import "testing"

func TestSessionCloneDiverges(t *testing.T) {
	s := NewSession(NewID())
	s.SetState("k", "v")
	s.Metadata["owner"] = "a"

	cp := s.Clone()
	cp.SetState("k", "other")
	cp.Metadata["owner"] = "b"

	if v, _ := s.GetState("k"); v != "v" {
		t.Fatalf("expected original state untouched, got %v", v)
	}
	if s.Metadata["owner"] != "a" {
		t.Fatalf("expected original metadata untouched, got %q", s.Metadata["owner"])
	}
}

func TestSessionSetStateUpdatesTimestamp(t *testing.T) {
	s := NewSession("s1")
	before := s.Updated
	s.SetState("k", 1)
	if s.Updated.Before(before) {
		t.Fatalf("expected Updated to advance")
	}
	if v, ok := s.GetState("k"); !ok || v != 1 {
		t.Fatalf("expected stored value, got %v (ok=%v)", v, ok)
	}
}
