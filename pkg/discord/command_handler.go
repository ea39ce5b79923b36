// Package discord provides the command handler that dispatches prefix commands.
package discord

import (
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler resolves incoming messages against the command table
type CommandHandler struct {
	client *ExtendedClient
}

// NewCommandHandler creates a new CommandHandler
func NewCommandHandler(client *ExtendedClient) *CommandHandler {
	return &CommandHandler{client: client}
}

// RegisterCommand adds a command and its aliases to the table
func (ch *CommandHandler) RegisterCommand(cmd *Command) {
	ch.client.Commands.Set(cmd.Name, cmd)
	for _, alias := range cmd.Aliases {
		ch.client.Commands.Set(alias, cmd)
	}
	logger.Debug("Command registered: "+cmd.Name, "CommandHandler")
}

// SplitCommand strips the prefix and splits a message into keyword and
// arguments. ok is false when the line is not a command invocation.
func SplitCommand(content, prefix string) (keyword string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}

// HandleMessage is the MessageCreate handler that dispatches prefix commands
func (ch *CommandHandler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bots entirely, including ourselves
	if m.Author == nil || m.Author.Bot {
		return
	}

	keyword, args, ok := SplitCommand(m.Content, config.Get().Prefix)
	if !ok {
		return
	}

	cmd, found := ch.client.Commands.Get(keyword)
	if !found {
		// Unknown keywords are not commands for us; stay silent
		return
	}

	ctx := &CommandContext{
		Session: s,
		Message: m,
		Args:    args,
		Client:  ch.client,
	}

	if cmd.IsDev && m.Author.ID != config.Get().OwnerID {
		// Dev commands are invisible to everyone but the owner
		return
	}

	// Capability check before anything else touches state
	if !ctx.HasPermission(cmd.UserPermissions) {
		if err := ctx.ReplyError("❌ You do not have permission to use this command."); err != nil {
			logger.Error("Error sending permission denial: "+err.Error(), "CommandHandler")
		}
		return
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := cmd.Run(ctx); err != nil {
			logger.Error("Error executing command "+cmd.Name+": "+err.Error(), "CommandHandler")
			if err := ctx.ReplyError("❌ Something went wrong running that command."); err != nil {
				logger.Error("Error sending failure reply: "+err.Error(), "CommandHandler")
			}
		}
	}()
}
