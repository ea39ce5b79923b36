// Package discord provides typed custom IDs for message components.
package discord

import "strings"

// componentPrefix namespaces our component IDs so foreign components
// (from other bots' forwarded messages, or older deployments) are ignored.
const componentPrefix = "guard"

const componentSeparator = ":"

// ComponentToken identifies which action a component interaction targets
// and which user it applies to. The user ID travels inside the component's
// own custom ID, so the selection handler never re-derives it from text.
type ComponentToken struct {
	Action string
	UserID string
}

// MakeComponentID encodes a token as "guard:<action>:<userID>"
func MakeComponentID(action, userID string) string {
	return strings.Join([]string{componentPrefix, action, userID}, componentSeparator)
}

// ParseComponentID decodes a custom ID produced by MakeComponentID.
// ok is false for foreign or malformed IDs. The user ID must be a Discord
// snowflake (digits only), which guarantees it cannot contain the separator.
func ParseComponentID(customID string) (ComponentToken, bool) {
	parts := strings.Split(customID, componentSeparator)
	if len(parts) != 3 || parts[0] != componentPrefix {
		return ComponentToken{}, false
	}
	if parts[1] == "" || !isSnowflake(parts[2]) {
		return ComponentToken{}, false
	}
	return ComponentToken{Action: parts[1], UserID: parts[2]}, true
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
