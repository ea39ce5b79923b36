// Package web provides the health and status routes.
package web

import (
	"net/http"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the liveness, health and API routes
func SetupRoutes(s *Server) {
	s.GET("/", rootHandler)
	s.GET("/health", healthHandler)

	api := s.Group("/api")
	{
		api.GET("/bot", botInfoHandler)
	}
}

// rootHandler is the plain liveness probe
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "Moderation bot is running.")
}

// healthHandler returns process uptime and connection status
func healthHandler(c *gin.Context) {
	client := discord.Get()

	botTag := "Not connected"
	uptime := 0.0
	if client != nil {
		uptime = client.Uptime().Seconds()
		if client.IsReady() && client.Session.State.User != nil {
			botTag = client.Session.State.User.Username
		}
	}

	mqttOnline := false
	if conn := mqtt.Get(); conn != nil {
		mqttOnline = conn.IsConnected()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "online",
		"uptime": uptime,
		"bot":    botTag,
		"mqtt":   mqttOnline,
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"avatar":   user.Avatar,
		"guilds":   client.GuildCount(),
		"isReady":  client.IsReady(),
		"version":  config.Version,
		"built":    config.BuildTime,
	})
}
