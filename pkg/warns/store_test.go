package warns

import (
	"fmt"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func TestAddAndList(t *testing.T) {
	store := NewStore()

	warn := store.Add("user-1", "spamming", "Mod#0001")

	if warn.ID != "warn-1" {
		t.Errorf("ID = %v, want %v", warn.ID, "warn-1")
	}
	if warn.Reason != "spamming" {
		t.Errorf("Reason = %v, want %v", warn.Reason, "spamming")
	}
	if warn.Moderator != "Mod#0001" {
		t.Errorf("Moderator = %v, want %v", warn.Moderator, "Mod#0001")
	}
	if warn.Timestamp == 0 {
		t.Error("Timestamp should be populated")
	}

	list := store.List("user-1")
	if len(list) != 1 {
		t.Fatalf("List length = %v, want 1", len(list))
	}
	if list[0] != warn {
		t.Errorf("List()[0] = %v, want %v", list[0], warn)
	}
}

func TestAddDefaultReason(t *testing.T) {
	store := NewStore()

	warn := store.Add("user-1", "", "Mod#0001")

	if warn.Reason != models.DefaultWarnReason {
		t.Errorf("Reason = %v, want %v", warn.Reason, models.DefaultWarnReason)
	}
}

func TestIDsAreUniqueAcrossUsers(t *testing.T) {
	store := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		for _, user := range []string{"alice", "bob"} {
			warn := store.Add(user, "reason", "Mod#0001")
			if seen[warn.ID] {
				t.Fatalf("duplicate warning ID issued: %s", warn.ID)
			}
			seen[warn.ID] = true
		}
	}

	// One shared counter: ten records, ids warn-1 through warn-10
	if !seen["warn-10"] {
		t.Error("expected shared counter to reach warn-10")
	}
}

func TestListUnknownUser(t *testing.T) {
	store := NewStore()

	list := store.List("nobody")
	if len(list) != 0 {
		t.Errorf("List for unknown user = %v, want empty", list)
	}
}

func TestListIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Add("user-1", "first", "Mod#0001")
	store.Add("user-1", "second", "Mod#0001")

	first := store.List("user-1")
	second := store.List("user-1")

	if len(first) != len(second) {
		t.Fatalf("lists differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("lists differ at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add("user-1", "first", "Mod#0001")

	list := store.List("user-1")
	list[0].Reason = "tampered"

	if store.List("user-1")[0].Reason != "first" {
		t.Error("mutating the returned slice must not affect the store")
	}
}

func TestRemove(t *testing.T) {
	store := NewStore()
	first := store.Add("user-1", "first", "Mod#0001")
	second := store.Add("user-1", "second", "Mod#0001")

	removed, remaining, ok := store.Remove("user-1", first.ID)
	if !ok {
		t.Fatal("Remove returned ok=false for an existing warning")
	}
	if removed.ID != first.ID {
		t.Errorf("removed ID = %v, want %v", removed.ID, first.ID)
	}
	if len(remaining) != 1 || remaining[0].ID != second.ID {
		t.Errorf("remaining = %v, want only %v", remaining, second.ID)
	}
}

func TestRemoveLastDeletesEntry(t *testing.T) {
	store := NewStore()
	warn := store.Add("user-1", "only", "Mod#0001")

	_, remaining, ok := store.Remove("user-1", warn.ID)
	if !ok {
		t.Fatal("Remove returned ok=false for an existing warning")
	}
	if len(remaining) != 0 {
		t.Errorf("remaining = %v, want empty", remaining)
	}

	if len(store.List("user-1")) != 0 {
		t.Error("List should be empty after removing the last warning")
	}

	// The key itself must be gone, not left mapping to an empty slice
	store.mu.RLock()
	_, exists := store.entries["user-1"]
	store.mu.RUnlock()
	if exists {
		t.Error("user entry should be deleted when its last warning is removed")
	}
}

func TestRemoveUnknownID(t *testing.T) {
	store := NewStore()
	store.Add("user-1", "first", "Mod#0001")
	before := store.List("user-1")

	_, _, ok := store.Remove("user-1", "warn-999")
	if ok {
		t.Error("Remove should return ok=false for an unknown warning ID")
	}

	after := store.List("user-1")
	if len(before) != len(after) {
		t.Fatalf("Remove of unknown ID changed list length: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Remove of unknown ID changed contents at %d", i)
		}
	}
}

func TestRemoveUnknownUser(t *testing.T) {
	store := NewStore()

	_, _, ok := store.Remove("nobody", "warn-1")
	if ok {
		t.Error("Remove should return ok=false for an unknown user")
	}
}

func TestRemoveTwiceIsIdempotent(t *testing.T) {
	store := NewStore()
	warn := store.Add("user-1", "only", "Mod#0001")

	if _, _, ok := store.Remove("user-1", warn.ID); !ok {
		t.Fatal("first Remove should succeed")
	}
	if _, _, ok := store.Remove("user-1", warn.ID); ok {
		t.Error("second Remove of the same ID should report not-found")
	}
}

func TestCount(t *testing.T) {
	store := NewStore()
	for i := 0; i < 3; i++ {
		store.Add("user-1", fmt.Sprintf("reason %d", i), "Mod#0001")
	}

	if got := store.Count("user-1"); got != 3 {
		t.Errorf("Count = %v, want 3", got)
	}
	if got := store.Count("nobody"); got != 0 {
		t.Errorf("Count for unknown user = %v, want 0", got)
	}
}
