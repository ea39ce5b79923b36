// Package mod - rendering for the warning list and its removal menu.
// These builders are pure so the interaction flow can be tested without
// a live session.
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// RemoveWarningAction is the component action routed back to this package
// when a moderator picks a warning from the select menu.
const RemoveWarningAction = "remove-warning"

// menuLabelLimit caps how much of a reason shows up in a select option.
const menuLabelLimit = 50

// BuildWarningsEmbed renders the warning list for a user.
// removedReason is echoed under the list after a removal; empty on the
// initial render.
func BuildWarningsEmbed(userTag, userID string, records []models.Warn, removedReason string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color:       0xFF6600,
		Title:       fmt.Sprintf("⚠️ Warnings for %s", userTag),
		Description: fmt.Sprintf("Total warnings: %d", len(records)),
		Timestamp:   discord.Timestamp(),
	}

	for i, warn := range records {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("Warning %d - ID: %s", i+1, warn.ID),
			Value: fmt.Sprintf("**Reason:** %s\n**Moderator:** %s\n**Date:** <t:%d:d>",
				warn.Reason, warn.Moderator, warn.Timestamp),
			Inline: false,
		})
	}

	if removedReason != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Removed: %s", truncate(removedReason, menuLabelLimit)),
		}
	}

	return embed
}

// BuildRemoveMenu renders the select menu offering one option per warning.
// The target user ID travels inside the menu's custom ID.
func BuildRemoveMenu(userID string, records []models.Warn) discordgo.SelectMenu {
	options := make([]discordgo.SelectMenuOption, 0, len(records))
	for i, warn := range records {
		options = append(options, discordgo.SelectMenuOption{
			Label:       fmt.Sprintf("Warning %d: %s", i+1, truncate(warn.Reason, menuLabelLimit)),
			Description: fmt.Sprintf("ID: %s | By: %s", warn.ID, warn.Moderator),
			Value:       warn.ID,
		})
	}

	return discordgo.SelectMenu{
		CustomID:    discord.MakeComponentID(RemoveWarningAction, userID),
		Placeholder: "Select a warning to remove",
		Options:     options,
	}
}

// BuildClearedEmbed is the terminal view once the last warning is gone.
func BuildClearedEmbed(removed models.Warn, removedBy string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       0x00FF00,
		Title:       "✅ All Warnings Cleared",
		Description: fmt.Sprintf("Warning ID %s has been removed. This user has no warnings left.", removed.ID),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Removed Reason", Value: removed.Reason, Inline: false},
			{Name: "Removed By", Value: removedBy, Inline: true},
		},
		Timestamp: discord.Timestamp(),
	}
}

// truncate caps a string at limit runes
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
