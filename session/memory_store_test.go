package session

import "testing"

func TestCreateGetUpdate(t *testing.T) {
	store := NewMemoryStore()
	s := store.Create()
	if s.ID == "" {
		t.Fatalf("empty session id")
	}

	got, ok := store.Get(s.ID)
	if !ok {
		t.Fatalf("created session not retrievable")
	}
	if got.Authorization != nil {
		t.Fatalf("fresh session already authorized")
	}

	got.Authorization = &Authorization{AccessToken: "tok", Username: "alice"}
	store.Update(got)

	got, ok = store.Get(s.ID)
	if !ok || got.Authorization == nil || got.Authorization.Username != "alice" {
		t.Fatalf("authorization not persisted: %+v", got)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	store := NewMemoryStore()
	a := store.Create()
	b := store.Create()
	if a.ID == b.ID {
		t.Fatalf("duplicate session ids")
	}
}

func TestGetUnknownAndDelete(t *testing.T) {
	store := NewMemoryStore()
	if _, ok := store.Get("nope"); ok {
		t.Fatalf("unknown id resolved")
	}
	s := store.Create()
	store.Delete(s.ID)
	if _, ok := store.Get(s.ID); ok {
		t.Fatalf("deleted session still retrievable")
	}
}
