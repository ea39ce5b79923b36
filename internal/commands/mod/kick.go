// Package mod - kick command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/audit"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the kick command
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kicks a user from the server",
		"mod",
		kickHandler,
	).WithUsage("kick @user reason").
		WithUserPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.MentionedUser()
	if user == nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Please mention a user to kick.\n\n**Usage:** `%skick @user reason`", ctx.Client.GetConfig().Prefix))
	}

	member := discord.ResolveMember(ctx.Session, ctx.Message.GuildID, user.ID)
	if member == nil {
		return ctx.ReplyError("❌ User not found in this server.")
	}

	if !discord.CanActOn(ctx.Session, ctx.Message.GuildID, member) {
		return ctx.ReplyError("❌ I cannot kick this user. They may have higher permissions than me.")
	}

	reason := ctx.RestArgs(1)
	if reason == "" {
		reason = models.DefaultWarnReason
	}

	if err := ctx.Session.GuildMemberDeleteWithReason(ctx.Message.GuildID, user.ID, reason); err != nil {
		logger.Error(fmt.Sprintf("Error kicking %s: %v", user.ID, err), "CMD-Kick")
		return ctx.ReplyError("❌ Failed to kick the user. Please check my permissions.")
	}

	audit.Record("kick", ctx.Message.GuildID, ctx.User().String(), user.ID, reason, "")

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0xFF0000,
		Title:       "👢 User Kicked",
		Description: fmt.Sprintf("%s has been kicked from the server.", user.String()),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reason", Value: reason, Inline: false},
			{Name: "Moderator", Value: ctx.User().String(), Inline: true},
		},
		Timestamp: discord.Timestamp(),
	})
}
