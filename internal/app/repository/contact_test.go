package repository

import "testing"

func TestCreateContactEntry(t *testing.T) {
	repo := newTestRepository(t)

	entry, err := repo.CreateContactEntry("x", "y@z.com", "hi")
	if err != nil {
		t.Fatalf("CreateContactEntry error: %v", err)
	}
	if entry.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if entry.Name != "x" || entry.Email != "y@z.com" || entry.Message != "hi" {
		t.Fatalf("entry fields not persisted: %+v", entry)
	}
}
