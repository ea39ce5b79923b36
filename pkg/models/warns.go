package models

// DefaultWarnReason is stored when a moderator omits the reason argument.
const DefaultWarnReason = "No reason provided"

// Warn represents a single warning issued to a user.
// The ID is assigned once at creation and never reused.
type Warn struct {
	ID        string `json:"id"`
	Reason    string `json:"reason"`
	Moderator string `json:"moderator"`
	Timestamp int64  `json:"timestamp"`
}
