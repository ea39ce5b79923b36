// Package dev provides owner-only development commands.
package dev

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterDevCommands registers the dev commands with the dispatcher.
// The dispatcher hides them from everyone but the configured owner.
func RegisterDevCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createEvalCommand())
}
