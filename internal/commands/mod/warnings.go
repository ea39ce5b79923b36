// Package mod - warnings command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the warnings command
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Shows all warnings for a user with interactive removal",
		"mod",
		warningsHandler,
	).WithUsage("warnings @user").
		WithAliases("warns").
		WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warningsHandler handles the warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.MentionedUser()
	if user == nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Please mention a user.\n\n**Usage:** `%swarnings @user`", ctx.Client.GetConfig().Prefix))
	}

	records := ctx.Client.Warns.List(user.ID)
	if len(records) == 0 {
		return ctx.ReplyInfo(fmt.Sprintf("ℹ️ No warnings found for %s.", user.String()))
	}

	embed := BuildWarningsEmbed(user.String(), user.ID, records, "")
	menu := BuildRemoveMenu(user.ID, records)

	return ctx.ReplyComplex(&discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{menu},
			},
		},
	})
}
