// Package mod provides the moderation commands.
// Each command is in its own file for better organization.
package mod

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands with the dispatcher
func RegisterModCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createWarnCommand())
	client.CommandHandler.RegisterCommand(createWarningsCommand())
	client.CommandHandler.RegisterCommand(createKickCommand())
	client.CommandHandler.RegisterCommand(createBanCommand())
	client.CommandHandler.RegisterCommand(createUnbanCommand())
	client.CommandHandler.RegisterCommand(createMuteCommand())
	client.CommandHandler.RegisterCommand(createUnmuteCommand())
}
