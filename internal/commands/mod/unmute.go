// Package mod - unmute command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/audit"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createUnmuteCommand creates the unmute command
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Removes a user's timeout",
		"mod",
		unmuteHandler,
	).WithUsage("unmute @user").
		WithUserPermissions(discordgo.PermissionModerateMembers)
}

// unmuteHandler handles the unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
	user := ctx.MentionedUser()
	if user == nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Please mention a user to unmute.\n\n**Usage:** `%sunmute @user`", ctx.Client.GetConfig().Prefix))
	}

	member := discord.ResolveMember(ctx.Session, ctx.Message.GuildID, user.ID)
	if member == nil {
		return ctx.ReplyError("❌ User not found in this server.")
	}

	if !discord.CanActOn(ctx.Session, ctx.Message.GuildID, member) {
		return ctx.ReplyError("❌ I cannot unmute this user. They may have higher permissions than me.")
	}

	if err := ctx.Session.GuildMemberTimeout(ctx.Message.GuildID, user.ID, nil); err != nil {
		logger.Error(fmt.Sprintf("Error unmuting %s: %v", user.ID, err), "CMD-Unmute")
		return ctx.ReplyError("❌ Failed to unmute the user. Please check my permissions.")
	}

	audit.Record("unmute", ctx.Message.GuildID, ctx.User().String(), user.ID, "", "")

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0x00FF00,
		Title:       "🔊 User Unmuted",
		Description: fmt.Sprintf("%s can speak again.", user.String()),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Moderator", Value: ctx.User().String(), Inline: true},
		},
		Timestamp: discord.Timestamp(),
	})
}
