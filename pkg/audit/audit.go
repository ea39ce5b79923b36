// Package audit emits moderation action events for operator tooling.
// Events go out over MQTT on a best-effort basis; nothing here is durable
// and a missing broker never blocks or fails a moderation command.
package audit

import (
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
)

// Event is one moderation action as seen by operators.
type Event struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	GuildID   string `json:"guildId"`
	ActorTag  string `json:"actorTag"`
	TargetID  string `json:"targetId"`
	Reason    string `json:"reason,omitempty"`
	Extra     string `json:"extra,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Recorder publishes audit events to the broker.
type Recorder struct {
	conn *mqtt.MqttCommunicator
}

var (
	recorder *Recorder
	once     sync.Once
)

// Init initializes the global recorder with an MQTT connection (may be nil).
func Init(conn *mqtt.MqttCommunicator) *Recorder {
	once.Do(func() {
		recorder = &Recorder{conn: conn}
	})
	return recorder
}

// Get returns the global recorder instance
func Get() *Recorder {
	return recorder
}

// Record publishes a moderation event. Failures are logged and swallowed.
func (r *Recorder) Record(action, guildID, actorTag, targetID, reason, extra string) {
	if r == nil || r.conn == nil || !r.conn.IsConnected() {
		return
	}

	event := Event{
		ID:        uuid.New().String(),
		Action:    action,
		GuildID:   guildID,
		ActorTag:  actorTag,
		TargetID:  targetID,
		Reason:    reason,
		Extra:     extra,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to marshal audit event: %v", err), "Audit")
		return
	}

	topic := fmt.Sprintf("guard/moderation/%s", action)
	if err := r.conn.Publish(topic, payload); err != nil {
		logger.Warn(fmt.Sprintf("Failed to publish audit event: %v", err), "Audit")
	}
}

// Record publishes a moderation event using the global recorder.
func Record(action, guildID, actorTag, targetID, reason, extra string) {
	Get().Record(action, guildID, actorTag, targetID, reason, extra)
}
