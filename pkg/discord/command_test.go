package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "test" {
		t.Errorf("Name = %v, want %v", cmd.Name, "test")
	}

	if cmd.Description != "Test command" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Test command")
	}

	if cmd.Category != "test" {
		t.Errorf("Category = %v, want %v", cmd.Category, "test")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandBuilder verifies the builder methods
func TestCommandBuilder(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("test", "Test command", "test", handler).
		WithUsage("%test @user").
		WithAliases("t", "tst").
		WithUserPermissions(discordgo.PermissionModerateMembers)

	if cmd.Usage != "%test @user" {
		t.Errorf("Usage = %v, want %v", cmd.Usage, "%test @user")
	}

	if len(cmd.Aliases) != 2 {
		t.Fatalf("Aliases length = %v, want 2", len(cmd.Aliases))
	}

	if cmd.UserPermissions != discordgo.PermissionModerateMembers {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionModerateMembers)
	}

	if cmd.IsDev {
		t.Error("IsDev should default to false")
	}

	if !cmd.AsDev().IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

// TestCommandCollection verifies keyword and alias lookups
func TestCommandCollection(t *testing.T) {
	handler := func(ctx *CommandContext) error { return nil }

	cc := NewCommandCollection()
	cmd := NewCommand("warn", "Warn a user", "mod", handler).WithAliases("w")

	cc.Set(cmd.Name, cmd)
	cc.Set("w", cmd)

	if got, ok := cc.Get("warn"); !ok || got != cmd {
		t.Error("Get by name failed")
	}
	if got, ok := cc.Get("w"); !ok || got != cmd {
		t.Error("Get by alias failed")
	}
	if _, ok := cc.Get("missing"); ok {
		t.Error("Get for unknown keyword should fail")
	}

	// Aliases do not inflate the distinct command count
	if cc.Size() != 1 {
		t.Errorf("Size = %v, want 1", cc.Size())
	}
	if len(cc.All()) != 1 {
		t.Errorf("All length = %v, want 1", len(cc.All()))
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		content string
		prefix  string
		keyword string
		args    []string
		ok      bool
	}{
		{"simple", "%warn @bob spamming", "%", "warn", []string{"@bob", "spamming"}, true},
		{"uppercase keyword", "%WARN @bob", "%", "warn", []string{"@bob"}, true},
		{"no args", "%help", "%", "help", nil, true},
		{"extra whitespace", "%warn   @bob    too   many  spaces", "%", "warn", []string{"@bob", "too", "many", "spaces"}, true},
		{"no prefix", "warn @bob", "%", "", nil, false},
		{"prefix only", "%", "%", "", nil, false},
		{"prefix and spaces", "%   ", "%", "", nil, false},
		{"different prefix", "!warn @bob", "%", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyword, args, ok := SplitCommand(tt.content, tt.prefix)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if keyword != tt.keyword {
				t.Errorf("keyword = %v, want %v", keyword, tt.keyword)
			}
			if len(args) != len(tt.args) {
				t.Fatalf("args = %v, want %v", args, tt.args)
			}
			for i := range args {
				if args[i] != tt.args[i] {
					t.Errorf("args[%d] = %v, want %v", i, args[i], tt.args[i])
				}
			}
		})
	}
}

func TestContextArgs(t *testing.T) {
	ctx := &CommandContext{Args: []string{"@bob", "being", "rude"}}

	if got := ctx.Arg(0); got != "@bob" {
		t.Errorf("Arg(0) = %v, want @bob", got)
	}
	if got := ctx.Arg(5); got != "" {
		t.Errorf("Arg(5) = %v, want empty", got)
	}
	if got := ctx.RestArgs(1); got != "being rude" {
		t.Errorf("RestArgs(1) = %v, want 'being rude'", got)
	}
	if got := ctx.RestArgs(3); got != "" {
		t.Errorf("RestArgs(3) = %v, want empty", got)
	}
}
