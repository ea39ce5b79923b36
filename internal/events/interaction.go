// Package events provides event handlers for interaction events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/internal/commands/mod"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterInteractionEvents registers all interaction-related event handlers
func RegisterInteractionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		onInteractionCreate(s, i, client)
	})
}

// onInteractionCreate routes message components (select menus, buttons).
// Components carry a typed custom ID; anything that does not parse came
// from another bot or an older deployment and is ignored.
func onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, client *discord.ExtendedClient) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	token, ok := discord.ParseComponentID(customID)
	if !ok {
		logger.Debug(fmt.Sprintf("Ignoring foreign component: %s", customID), "Interaction")
		return
	}

	logger.Debug(fmt.Sprintf("🔘 Component used: %s", customID), "Interaction")

	switch token.Action {
	case mod.RemoveWarningAction:
		mod.HandleRemoveWarningSelect(s, i, client, token)
	default:
		logger.Debug(fmt.Sprintf("Unhandled component action: %s", token.Action), "Interaction")
	}
}
