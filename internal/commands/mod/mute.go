// Package mod - mute command
package mod

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/audit"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/duration"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the mute command
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Times out a user for a duration like 10m, 2h or 1d",
		"mod",
		muteHandler,
	).WithUsage("mute @user duration reason").
		WithAliases("timeout").
		WithUserPermissions(discordgo.PermissionModerateMembers)
}

// muteHandler handles the mute command
func muteHandler(ctx *discord.CommandContext) error {
	user := ctx.MentionedUser()
	if user == nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Please mention a user to mute.\n\n**Usage:** `%smute @user 10m reason`", ctx.Client.GetConfig().Prefix))
	}

	member := discord.ResolveMember(ctx.Session, ctx.Message.GuildID, user.ID)
	if member == nil {
		return ctx.ReplyError("❌ User not found in this server.")
	}

	if !discord.CanActOn(ctx.Session, ctx.Message.GuildID, member) {
		return ctx.ReplyError("❌ I cannot mute this user. They may have higher permissions than me.")
	}

	d, err := duration.Parse(ctx.Arg(1))
	if err != nil {
		if errors.Is(err, duration.ErrTooLong) {
			return ctx.ReplyError("❌ Duration too long. The maximum timeout is **28 days**.")
		}
		return ctx.ReplyError("❌ Invalid duration. Use a number followed by `s`, `m`, `h` or `d`, e.g. `10m` or `2d`.")
	}

	reason := ctx.RestArgs(2)
	if reason == "" {
		reason = models.DefaultWarnReason
	}

	until := time.Now().Add(d)
	if err := ctx.Session.GuildMemberTimeout(ctx.Message.GuildID, user.ID, &until); err != nil {
		logger.Error(fmt.Sprintf("Error muting %s: %v", user.ID, err), "CMD-Mute")
		return ctx.ReplyError("❌ Failed to mute the user. Please check my permissions.")
	}

	audit.Record("mute", ctx.Message.GuildID, ctx.User().String(), user.ID, reason, duration.Humanize(d))

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0xFF6600,
		Title:       "🔇 User Muted",
		Description: fmt.Sprintf("%s has been muted for **%s**.", user.String(), duration.Humanize(d)),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reason", Value: reason, Inline: false},
			{Name: "Moderator", Value: ctx.User().String(), Inline: true},
			{Name: "Expires", Value: fmt.Sprintf("<t:%d:R>", until.Unix()), Inline: true},
		},
		Timestamp: discord.Timestamp(),
	})
}
