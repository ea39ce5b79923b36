// Package utils - help command
package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createHelpCommand creates the help command
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Shows this help message",
		"utils",
		helpHandler,
	).WithUsage("help")
}

// helpHandler builds the listing from the live command table, so new
// commands show up without touching this file
func helpHandler(ctx *discord.CommandContext) error {
	prefix := ctx.Client.GetConfig().Prefix

	embed := &discordgo.MessageEmbed{
		Color:       0x0099FF,
		Title:       "📋 Moderation Bot Commands",
		Description: fmt.Sprintf("All commands use the `%s` prefix", prefix),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("PancyGuard | Prefix: %s", prefix),
		},
		Timestamp: discord.Timestamp(),
	}

	for _, cmd := range ctx.Client.Commands.All() {
		if cmd.IsDev {
			continue
		}
		usage := cmd.Usage
		if usage == "" {
			usage = cmd.Name
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s%s", prefix, usage),
			Value:  cmd.Description,
			Inline: false,
		})
	}

	return ctx.ReplyEmbed(embed)
}
