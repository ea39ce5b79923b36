// Package mod - interactive warning removal via the warnings select menu.
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/audit"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// HandleRemoveWarningSelect processes a selection on the removal menu.
// The target user comes from the component token, the warning ID from the
// selected value. Capability is re-checked at selection time, so a
// permission revoked after the list was rendered still blocks the removal.
func HandleRemoveWarningSelect(s *discordgo.Session, i *discordgo.InteractionCreate, client *discord.ExtendedClient, token discord.ComponentToken) {
	if i.Member == nil || i.Member.Permissions&discordgo.PermissionModerateMembers == 0 {
		respondEphemeral(s, i, "❌ You do not have permission to remove warnings.")
		return
	}

	values := i.MessageComponentData().Values
	if len(values) != 1 {
		respondEphemeral(s, i, "❌ Warning not found.")
		return
	}
	warnID := values[0]

	removed, remaining, ok := client.Warns.Remove(token.UserID, warnID)
	if !ok {
		// Already removed by a concurrent selection; idempotent
		respondEphemeral(s, i, "❌ Warning not found.")
		return
	}

	audit.Record("removewarn", i.GuildID, i.Member.User.String(), token.UserID, removed.Reason, removed.ID)

	if len(remaining) == 0 {
		// Terminal state: replace the list in place, drop the menu
		update(s, i, BuildClearedEmbed(removed, i.Member.User.String()), nil)
		return
	}

	embed := BuildWarningsEmbed(targetTag(s, token.UserID), token.UserID, remaining, removed.Reason)
	menu := BuildRemoveMenu(token.UserID, remaining)
	update(s, i, embed, []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{menu},
		},
	})
}

// targetTag resolves a display tag for the list title, falling back to the
// raw ID when the user cannot be fetched.
func targetTag(s *discordgo.Session, userID string) string {
	user, err := s.User(userID)
	if err != nil {
		return userID
	}
	return user.String()
}

// update edits the originating message in place
func update(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error updating warnings view: %v", err), "CMD-RemoveWarn")
	}
}

// respondEphemeral answers the interaction with an error only its author sees
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, description string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Color:       0xFF0000,
				Description: description,
			}},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error responding to interaction: %v", err), "CMD-RemoveWarn")
	}
}
