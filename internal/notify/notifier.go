// Package notify carries the side-effect channel for application and
// messaging events. Senders are best effort: a failed delivery is logged and
// swallowed, never surfaced to the request that triggered it.
package notify

import (
	"github.com/google/uuid"
)

type ApplicationEvent struct {
	ApplicationID  uuid.UUID
	JobTitle       string
	JobCompany     string
	Status         string
	StudentName    string
	StudentEmail   string
	StudentUserID  uuid.UUID
	RecruiterEmail string
}

type MessageEvent struct {
	ConversationID  uuid.UUID
	SenderName      string
	Preview         string
	RecipientUserID uuid.UUID
}

type Sender interface {
	ApplicationReceived(ev ApplicationEvent)
	ApplicationStatusChanged(ev ApplicationEvent)
	MessageReceived(ev MessageEvent)
}

// Multi fans an event out to every sender.
type Multi []Sender

func (m Multi) ApplicationReceived(ev ApplicationEvent) {
	for _, s := range m {
		s.ApplicationReceived(ev)
	}
}

func (m Multi) ApplicationStatusChanged(ev ApplicationEvent) {
	for _, s := range m {
		s.ApplicationStatusChanged(ev)
	}
}

func (m Multi) MessageReceived(ev MessageEvent) {
	for _, s := range m {
		s.MessageReceived(ev)
	}
}

// Noop satisfies Sender for tests and wiring without configured channels.
type Noop struct{}

func (Noop) ApplicationReceived(ApplicationEvent)      {}
func (Noop) ApplicationStatusChanged(ApplicationEvent) {}
func (Noop) MessageReceived(MessageEvent)              {}
