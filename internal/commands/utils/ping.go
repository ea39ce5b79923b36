// Package utils - ping command
package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// createPingCommand creates the ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Checks the bot latency",
		"utils",
		pingHandler,
	).WithUsage("ping")
}

// pingHandler handles the ping command
func pingHandler(ctx *discord.CommandContext) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()
	return ctx.Reply(fmt.Sprintf("🏓 Pong! Latency: %dms", latency))
}
