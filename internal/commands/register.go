// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, mod, dev).
package commands

import (
	"github.com/PancyStudios/PancyGuardGo/internal/commands/dev"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/mod"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/utils"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (help, ping, status)
	utils.RegisterUtilsCommands(client)

	// Moderation commands (warn, warnings, kick, ban, unban, mute, unmute)
	mod.RegisterModCommands(client)

	// Owner-only development commands
	dev.RegisterDevCommands(client)
}
