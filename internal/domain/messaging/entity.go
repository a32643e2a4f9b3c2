package messaging

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID          uuid.UUID `json:"id"`
	RecruiterID uuid.UUID `json:"recruiter_id"`
	StudentID   uuid.UUID `json:"student_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Display fields joined from the profile tables.
	CompanyName     string    `json:"company_name"`
	StudentName     string    `json:"student_name"`
	RecruiterUserID uuid.UUID `json:"recruiter_user_id"`
	StudentUserID   uuid.UUID `json:"student_user_id"`
}

// Participant reports whether userID sits on either side of the conversation.
func (c Conversation) Participant(userID uuid.UUID) bool {
	return c.RecruiterUserID == userID || c.StudentUserID == userID
}

type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderRole     string    `json:"sender_role"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type Preview struct {
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// PreviewLen caps preview text at this many characters, not bytes.
const PreviewLen = 100

// PreviewText shortens content for summaries and notifications without
// splitting a multi-byte character.
func PreviewText(content string) string {
	r := []rune(content)
	if len(r) <= PreviewLen {
		return content
	}
	return string(r[:PreviewLen]) + "..."
}

type Summary struct {
	Conversation

	LastMessage *Preview `json:"last_message"`
	UnreadCount int      `json:"unread_count"`
}
