// Package mod - ban command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/audit"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the ban command
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Bans a user from the server",
		"mod",
		banHandler,
	).WithUsage("ban @user reason").
		WithUserPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.MentionedUser()
	if user == nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Please mention a user to ban.\n\n**Usage:** `%sban @user reason`", ctx.Client.GetConfig().Prefix))
	}

	// A ban target does not have to be a member, but a member target must
	// be below the bot in the role hierarchy
	member := discord.ResolveMember(ctx.Session, ctx.Message.GuildID, user.ID)
	if member != nil && !discord.CanActOn(ctx.Session, ctx.Message.GuildID, member) {
		return ctx.ReplyError("❌ I cannot ban this user. They may have higher permissions than me.")
	}

	reason := ctx.RestArgs(1)
	if reason == "" {
		reason = models.DefaultWarnReason
	}

	if err := ctx.Session.GuildBanCreateWithReason(ctx.Message.GuildID, user.ID, reason, 0); err != nil {
		logger.Error(fmt.Sprintf("Error banning %s: %v", user.ID, err), "CMD-Ban")
		return ctx.ReplyError("❌ Failed to ban the user. Please check my permissions.")
	}

	audit.Record("ban", ctx.Message.GuildID, ctx.User().String(), user.ID, reason, "")

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0x990000,
		Title:       "🔨 User Banned",
		Description: fmt.Sprintf("%s has been banned from the server.", user.String()),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reason", Value: reason, Inline: false},
			{Name: "Moderator", Value: ctx.User().String(), Inline: true},
		},
		Timestamp: discord.Timestamp(),
	})
}
