package notify

import (
	"encoding/json"
	"time"

	"jobportal/internal/ws"

	"github.com/google/uuid"
)

// WSSender pushes events to the recipient's open websocket connections.
type WSSender struct {
	hub *ws.Hub
}

func NewWSSender(hub *ws.Hub) *WSSender {
	return &WSSender{hub: hub}
}

type wsEvent struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *WSSender) ApplicationReceived(ev ApplicationEvent) {}

func (s *WSSender) ApplicationStatusChanged(ev ApplicationEvent) {
	s.push(ev.StudentUserID, wsEvent{
		Type: "application_status_changed",
		Payload: map[string]any{
			"application_id": ev.ApplicationID,
			"job_title":      ev.JobTitle,
			"status":         ev.Status,
		},
		Timestamp: time.Now().UTC(),
	})
}

func (s *WSSender) MessageReceived(ev MessageEvent) {
	s.push(ev.RecipientUserID, wsEvent{
		Type: "message_received",
		Payload: map[string]any{
			"conversation_id": ev.ConversationID,
			"sender":          ev.SenderName,
			"preview":         ev.Preview,
		},
		Timestamp: time.Now().UTC(),
	})
}

func (s *WSSender) push(userID uuid.UUID, ev wsEvent) {
	if s == nil || s.hub == nil || userID == uuid.Nil {
		return
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	s.hub.SendToUser(userID, b)
}
