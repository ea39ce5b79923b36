// Package discord provides command types and structures.
package discord

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// CommandContext provides context for command execution
type CommandContext struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	// Args holds the whitespace-split arguments after the command keyword
	Args   []string
	Client *ExtendedClient
}

// Command represents a prefix text command
type Command struct {
	Name        string
	Description string
	Usage       string
	Category    string
	Aliases     []string
	// UserPermissions is the capability the invoking member must hold
	UserPermissions int64
	IsDev           bool
	Run             CommandRunFunc
}

// CommandRunFunc is the function type for command execution
type CommandRunFunc func(ctx *CommandContext) error

// NewCommand creates a new Command with required fields
func NewCommand(name, description, category string, run CommandRunFunc) *Command {
	return &Command{
		Name:        name,
		Description: description,
		Category:    category,
		Run:         run,
	}
}

// WithUsage sets the usage line shown on malformed invocations
func (c *Command) WithUsage(usage string) *Command {
	c.Usage = usage
	return c
}

// WithAliases sets alternative keywords for the command
func (c *Command) WithAliases(aliases ...string) *Command {
	c.Aliases = aliases
	return c
}

// WithUserPermissions sets required user permissions
func (c *Command) WithUserPermissions(perms int64) *Command {
	c.UserPermissions = perms
	return c
}

// AsDev marks the command as a dev-only command
func (c *Command) AsDev() *Command {
	c.IsDev = true
	return c
}

// Reply sends a plain reply to the triggering message
func (ctx *CommandContext) Reply(content string) error {
	_, err := ctx.Session.ChannelMessageSendReply(
		ctx.Message.ChannelID,
		content,
		ctx.Message.Reference(),
	)
	return err
}

// ReplyEmbed sends an embed reply to the triggering message
func (ctx *CommandContext) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := ctx.Session.ChannelMessageSendEmbedReply(
		ctx.Message.ChannelID,
		embed,
		ctx.Message.Reference(),
	)
	return err
}

// ReplyComplex sends a reply carrying embeds and components
func (ctx *CommandContext) ReplyComplex(send *discordgo.MessageSend) error {
	send.Reference = ctx.Message.Reference()
	_, err := ctx.Session.ChannelMessageSendComplex(ctx.Message.ChannelID, send)
	return err
}

// ReplyError sends a red error embed reply
func (ctx *CommandContext) ReplyError(description string) error {
	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0xFF0000,
		Description: description,
	})
}

// ReplyInfo sends a blue info embed reply
func (ctx *CommandContext) ReplyInfo(description string) error {
	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0x0099FF,
		Description: description,
	})
}

// User returns the user who triggered the command
func (ctx *CommandContext) User() *discordgo.User {
	return ctx.Message.Author
}

// Member returns the guild member who triggered the command
func (ctx *CommandContext) Member() *discordgo.Member {
	return ctx.Message.Member
}

// Guild returns the guild where the command was issued
func (ctx *CommandContext) Guild() *discordgo.Guild {
	if ctx.Message.GuildID == "" {
		return nil
	}
	guild, _ := ctx.Session.State.Guild(ctx.Message.GuildID)
	return guild
}

// MentionedUser returns the first user mentioned in the message, or nil
func (ctx *CommandContext) MentionedUser() *discordgo.User {
	if len(ctx.Message.Mentions) == 0 {
		return nil
	}
	return ctx.Message.Mentions[0]
}

// Arg returns the argument at index i, or "" when absent
func (ctx *CommandContext) Arg(i int) string {
	if i < 0 || i >= len(ctx.Args) {
		return ""
	}
	return ctx.Args[i]
}

// RestArgs joins the arguments from index i onward with single spaces.
// Original inter-word spacing is not preserved.
func (ctx *CommandContext) RestArgs(i int) string {
	if i < 0 || i >= len(ctx.Args) {
		return ""
	}
	return strings.Join(ctx.Args[i:], " ")
}

// HasPermission checks the invoking member's live channel permissions.
// Permissions are resolved at call time, never cached.
func (ctx *CommandContext) HasPermission(perm int64) bool {
	if perm == 0 {
		return true
	}
	perms, err := ctx.Session.UserChannelPermissions(ctx.Message.Author.ID, ctx.Message.ChannelID)
	if err != nil {
		return false
	}
	return perms&perm != 0
}

// Timestamp returns the RFC3339 timestamp used on embeds
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}
