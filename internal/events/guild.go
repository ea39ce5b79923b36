// Package events provides event handlers for guild (server) events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterGuildEvents registers all guild-related event handlers
func RegisterGuildEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildCreate)
	client.Session.AddHandler(onGuildDelete)
}

// onGuildCreate is called when the bot joins a server.
// GuildCreate also fires for every guild at startup, so joins older than
// a few seconds are skipped.
func onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.JoinedAt.Compare(time.Now().Add(-10*time.Second)) < 0 {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot added to server: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Members: %d | Channels: %d", g.MemberCount, len(g.Channels)), "Guild")

	if g.SystemChannelID != "" {
		prefix := config.Get().Prefix
		welcomeEmbed := &discordgo.MessageEmbed{
			Title:       "Thanks for adding me! 🛡️",
			Description: fmt.Sprintf("Hi, I'm **PancyGuard**. Use `%shelp` to see all my commands.", prefix),
			Color:       0x00ff00,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "⚠️ Warnings",
					Value:  fmt.Sprintf("Track infractions with `%swarn`", prefix),
					Inline: true,
				},
				{
					Name:   "🔧 Moderation",
					Value:  fmt.Sprintf("Kick, ban and mute with `%skick` and friends", prefix),
					Inline: true,
				},
				{
					Name:   "❓ Help",
					Value:  fmt.Sprintf("Use `%shelp` for more information", prefix),
					Inline: true,
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: "PancyGuard Go",
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, welcomeEmbed); err != nil {
			logger.Error(fmt.Sprintf("Error sending welcome message: %v", err), "Guild")
		}
	}
}

// onGuildDelete is called when the bot is removed from a server
func onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	logger.Info(fmt.Sprintf("➖ Bot removed from server ID: %s", g.ID), "Guild")
}
