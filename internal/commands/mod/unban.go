// Package mod - unban command
package mod

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/audit"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// mentionDecoration strips the characters wrapping a raw mention token,
// so both "<@123>" and "<@!123>" collapse to "123".
var mentionDecoration = strings.NewReplacer("<", "", "@", "", "!", "", ">", "")

// createUnbanCommand creates the unban command
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Unbans a user by mention or ID",
		"mod",
		unbanHandler,
	).WithUsage("unban @user | unban userId").
		WithUserPermissions(discordgo.PermissionBanMembers)
}

// unbanHandler handles the unban command
func unbanHandler(ctx *discord.CommandContext) error {
	token := ctx.Arg(0)
	if token == "" {
		return ctx.ReplyError(fmt.Sprintf("❌ Please provide a user ID or mention.\n\n**Usage:** `%sunban @user` or `%sunban userId`",
			ctx.Client.GetConfig().Prefix, ctx.Client.GetConfig().Prefix))
	}

	id := mentionDecoration.Replace(token)

	if err := ctx.Session.GuildBanDelete(ctx.Message.GuildID, id); err != nil {
		logger.Error(fmt.Sprintf("Error unbanning %s: %v", id, err), "CMD-Unban")
		return ctx.ReplyError("❌ Failed to unban the user. Make sure they are banned and the ID is correct.")
	}

	audit.Record("unban", ctx.Message.GuildID, ctx.User().String(), id, "", "")

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0x00FF00,
		Title:       "✅ User Unbanned",
		Description: fmt.Sprintf("User with ID %s has been unbanned.", id),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Moderator", Value: ctx.User().String(), Inline: true},
		},
		Timestamp: discord.Timestamp(),
	})
}
