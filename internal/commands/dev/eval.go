// Package dev - eval command
package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// createEvalCommand creates the eval command
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluates Go code and shows internal structures (dangerous)",
		"dev",
		evalHandler,
	).WithUsage("eval <code>").AsDev()
}

// evalHandler runs the snippet through a fresh yaegi interpreter.
// The dispatcher already rejected everyone but the owner, but the ID is
// re-checked here so the handler stays safe on its own.
func evalHandler(ctx *discord.CommandContext) error {
	if ctx.User().ID != config.Get().OwnerID || config.Get().OwnerID == "" {
		return ctx.ReplyError("❌ **Access denied:** this command is owner-only.")
	}

	start := time.Now()

	// Strip markdown code fences if present (```go ... ```)
	code := ctx.RestArgs(0)
	code = strings.TrimPrefix(code, "```go")
	code = strings.TrimPrefix(code, "```")
	code = strings.TrimSuffix(code, "```")
	code = strings.TrimSpace(code)

	if code == "" {
		return ctx.ReplyError("❌ Please provide code to evaluate.")
	}

	i := interp.New(interp.Options{})

	// Load the Go standard library (fmt, strings, os, ...)
	if err := i.Use(stdlib.Symbols); err != nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Error loading stdlib: %v", err))
	}

	// Expose the bot internals as globals: Ctx, Bot, Session, Warns, Config
	botExports := map[string]reflect.Value{
		"Ctx":     reflect.ValueOf(ctx),
		"Bot":     reflect.ValueOf(ctx.Client),
		"Session": reflect.ValueOf(ctx.Session),
		"Warns":   reflect.ValueOf(ctx.Client.Warns),
		"Config":  reflect.ValueOf(config.Get()),
	}

	if err := i.Use(interp.Exports{
		"github.com/PancyStudios/PancyGuardGo/internal/commands/dev/dev": botExports,
	}); err != nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Error registering variables: %v", err))
	}

	if _, err := i.Eval(`import . "github.com/PancyStudios/PancyGuardGo/internal/commands/dev"`); err != nil {
		return ctx.ReplyError(fmt.Sprintf("❌ Error importing variables: %v", err))
	}

	res, err := i.Eval(code)

	var output string
	if err != nil {
		output = fmt.Sprintf("❌ **Execution error:**\n```go\n%v\n```", err)
	} else {
		var resStr string
		if res.IsValid() {
			// %#v shows the full internal structure (fields, pointers, ...)
			resStr = fmt.Sprintf("%#v", res.Interface())
		} else {
			resStr = "nil"
		}
		if len(resStr) > 1900 {
			resStr = resStr[:1900] + "... (truncated)"
		}

		output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
	}

	logger.Debug(fmt.Sprintf("Eval finished in %s", time.Since(start)), "DevEval")

	return ctx.Reply(output)
}
