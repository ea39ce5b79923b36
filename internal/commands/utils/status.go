// Package utils - status command
package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
)

// createStatusCommand creates the status command
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Shows the bot status",
		"utils",
		statusHandler,
	).WithUsage("status")
}

// statusHandler handles the status command
func statusHandler(ctx *discord.CommandContext) error {
	mqttStatus := "🔴 Offline"
	if conn := mqtt.Get(); conn != nil && conn.IsConnected() {
		mqttStatus = "🟢 Online"
	}

	return ctx.Reply(fmt.Sprintf(
		"📊 **Bot Status**\n"+
			"• Bot: 🟢 Online\n"+
			"• Uptime: %s\n"+
			"• MQTT: %s\n"+
			"• Servers: %d",
		ctx.Client.Uptime().Round(time.Second),
		mqttStatus,
		ctx.Client.GuildCount(),
	))
}
