// Package mod - warn command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/audit"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the warn command
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warns a user and stores the warning",
		"mod",
		warnHandler,
	).WithUsage("warn @user reason").
		WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.MentionedUser()
	if user == nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Please mention a user to warn.\n\n**Usage:** `%swarn @user reason`", ctx.Client.GetConfig().Prefix))
	}

	// Everything after the mention token is the reason
	reason := ctx.RestArgs(1)

	warn := ctx.Client.Warns.Add(user.ID, reason, ctx.User().String())

	audit.Record("warn", ctx.Message.GuildID, ctx.User().String(), user.ID, warn.Reason, warn.ID)

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Color:       0xFFCC00,
		Title:       "⚠️ User Warned",
		Description: fmt.Sprintf("%s has been warned.", user.Mention()),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reason", Value: warn.Reason, Inline: false},
			{Name: "Moderator", Value: warn.Moderator, Inline: true},
			{Name: "Warning ID", Value: warn.ID, Inline: true},
		},
		Timestamp: discord.Timestamp(),
	})
}
