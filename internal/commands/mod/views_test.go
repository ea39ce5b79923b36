package mod

import (
	"strings"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/warns"
)

func sampleWarns() []models.Warn {
	return []models.Warn{
		{ID: "warn-1", Reason: "Spamming", Moderator: "mod#0001", Timestamp: 1700000000},
		{ID: "warn-2", Reason: models.DefaultWarnReason, Moderator: "mod#0002", Timestamp: 1700000100},
	}
}

func TestBuildWarningsEmbed(t *testing.T) {
	records := sampleWarns()
	embed := BuildWarningsEmbed("user#1234", "123456789012345678", records, "")

	if embed.Title != "⚠️ Warnings for user#1234" {
		t.Errorf("unexpected title: %q", embed.Title)
	}
	if embed.Description != "Total warnings: 2" {
		t.Errorf("unexpected description: %q", embed.Description)
	}
	if len(embed.Fields) != len(records) {
		t.Fatalf("expected %d fields, got %d", len(records), len(embed.Fields))
	}
	if !strings.Contains(embed.Fields[0].Name, "warn-1") {
		t.Errorf("first field should name warn-1, got %q", embed.Fields[0].Name)
	}
	if !strings.Contains(embed.Fields[1].Value, models.DefaultWarnReason) {
		t.Errorf("second field should carry the default reason, got %q", embed.Fields[1].Value)
	}
	if embed.Footer != nil {
		t.Errorf("initial render should have no footer, got %q", embed.Footer.Text)
	}
}

func TestBuildWarningsEmbedEchoesRemovedReason(t *testing.T) {
	embed := BuildWarningsEmbed("user#1234", "123456789012345678", sampleWarns(), "Being rude")

	if embed.Footer == nil {
		t.Fatal("expected a footer echoing the removed reason")
	}
	if embed.Footer.Text != "Removed: Being rude" {
		t.Errorf("unexpected footer: %q", embed.Footer.Text)
	}
}

func TestBuildRemoveMenu(t *testing.T) {
	records := sampleWarns()
	menu := BuildRemoveMenu("123456789012345678", records)

	token, ok := discord.ParseComponentID(menu.CustomID)
	if !ok {
		t.Fatalf("menu custom ID does not parse: %q", menu.CustomID)
	}
	if token.Action != RemoveWarningAction {
		t.Errorf("expected action %q, got %q", RemoveWarningAction, token.Action)
	}
	if token.UserID != "123456789012345678" {
		t.Errorf("expected user ID in token, got %q", token.UserID)
	}

	if len(menu.Options) != len(records) {
		t.Fatalf("expected %d options, got %d", len(records), len(menu.Options))
	}
	for i, opt := range menu.Options {
		if opt.Value != records[i].ID {
			t.Errorf("option %d value = %q, want warning ID %q", i, opt.Value, records[i].ID)
		}
	}
}

func TestBuildRemoveMenuTruncatesLongReasons(t *testing.T) {
	long := strings.Repeat("x", 80)
	menu := BuildRemoveMenu("123456789012345678", []models.Warn{
		{ID: "warn-9", Reason: long, Moderator: "mod#0001"},
	})

	label := menu.Options[0].Label
	want := "Warning 1: " + long[:menuLabelLimit]
	if label != want {
		t.Errorf("label not truncated: got %d chars (%q)", len(label), label)
	}
}

func TestBuildClearedEmbed(t *testing.T) {
	removed := models.Warn{ID: "warn-3", Reason: "Spamming", Moderator: "mod#0001"}
	embed := BuildClearedEmbed(removed, "mod#0002")

	if !strings.Contains(embed.Description, "warn-3") {
		t.Errorf("description should name the removed ID, got %q", embed.Description)
	}
	if embed.Fields[0].Value != "Spamming" {
		t.Errorf("unexpected removed reason: %q", embed.Fields[0].Value)
	}
	if embed.Fields[1].Value != "mod#0002" {
		t.Errorf("unexpected remover: %q", embed.Fields[1].Value)
	}
}

// TestRemovalFlowReRender walks the interactive removal flow against a real
// store: remove one of two warnings, re-render, then remove the last one.
func TestRemovalFlowReRender(t *testing.T) {
	store := warns.NewStore()
	first := store.Add("42", "Spamming", "mod#0001")
	second := store.Add("42", "", "mod#0001")

	removed, remaining, ok := store.Remove("42", first.ID)
	if !ok {
		t.Fatal("expected removal to succeed")
	}

	embed := BuildWarningsEmbed("user#1234", "42", remaining, removed.Reason)
	if len(embed.Fields) != 1 {
		t.Fatalf("expected 1 field after removal, got %d", len(embed.Fields))
	}
	if !strings.Contains(embed.Fields[0].Name, second.ID) {
		t.Errorf("remaining field should name %s, got %q", second.ID, embed.Fields[0].Name)
	}

	menu := BuildRemoveMenu("42", remaining)
	if len(menu.Options) != 1 || menu.Options[0].Value != second.ID {
		t.Fatalf("menu should offer only %s, got %+v", second.ID, menu.Options)
	}

	// Picking the same warning again must be a no-op
	if _, _, ok := store.Remove("42", first.ID); ok {
		t.Error("removing an already-removed warning should fail")
	}

	last, remaining, ok := store.Remove("42", second.ID)
	if !ok || len(remaining) != 0 {
		t.Fatalf("expected last removal to empty the list, ok=%v remaining=%d", ok, len(remaining))
	}
	if last.Reason != models.DefaultWarnReason {
		t.Errorf("expected default reason on the last warn, got %q", last.Reason)
	}
}
