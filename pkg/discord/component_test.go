package discord

import "testing"

func TestComponentIDRoundTrip(t *testing.T) {
	id := MakeComponentID("remove-warning", "123456789012345678")

	if id != "guard:remove-warning:123456789012345678" {
		t.Errorf("MakeComponentID = %v", id)
	}

	token, ok := ParseComponentID(id)
	if !ok {
		t.Fatal("ParseComponentID failed on our own ID")
	}
	if token.Action != "remove-warning" {
		t.Errorf("Action = %v, want remove-warning", token.Action)
	}
	if token.UserID != "123456789012345678" {
		t.Errorf("UserID = %v, want 123456789012345678", token.UserID)
	}
}

func TestParseComponentIDRejects(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"foreign component", "button_accept"},
		{"wrong namespace", "other:remove-warning:123"},
		{"missing user", "guard:remove-warning"},
		{"empty action", "guard::123"},
		{"empty user", "guard:remove-warning:"},
		{"non digit user", "guard:remove-warning:abc"},
		{"separator in user", "guard:remove-warning:123:456"},
		{"legacy prefix style", "remove-warning-123456789012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseComponentID(tt.id); ok {
				t.Errorf("ParseComponentID(%q) should fail", tt.id)
			}
		})
	}
}
