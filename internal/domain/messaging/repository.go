package messaging

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
)

type Repository interface {
	// GetOrCreateConversation returns the unique conversation for the pair,
	// creating it if absent. Repeated calls return the same row.
	GetOrCreateConversation(ctx context.Context, recruiterID, studentID uuid.UUID) (Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (Conversation, error)
	ListByRecruiter(ctx context.Context, recruiterID, viewerUserID uuid.UUID) ([]Summary, error)
	ListByStudent(ctx context.Context, studentID, viewerUserID uuid.UUID) ([]Summary, error)

	CreateMessage(ctx context.Context, m Message) error
	GetMessage(ctx context.Context, id uuid.UUID) (Message, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]Message, error)

	// MarkConversationRead flags every message in the conversation not sent
	// by readerID as read. Returns the number of rows updated.
	MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error)
	MarkMessageRead(ctx context.Context, messageID uuid.UUID) error

	UnreadCountForRecruiter(ctx context.Context, recruiterID, userID uuid.UUID) (int, error)
	UnreadCountForStudent(ctx context.Context, studentID, userID uuid.UUID) (int, error)
}
