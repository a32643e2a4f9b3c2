package usecase

import (
	"context"
	"errors"
	"strings"

	"jobportal/internal/domain/messaging"
	"jobportal/internal/domain/user"
	"jobportal/internal/notify"
	"jobportal/internal/pkg/authz"

	"github.com/google/uuid"
)

type SendMessageInput struct {
	// Recruiters address a student profile; the conversation is created on
	// first contact. Students reply into an existing conversation.
	StudentID      uuid.UUID
	ConversationID uuid.UUID
	Content        string
}

type MessagingUsecase interface {
	StartConversation(ctx context.Context, viewerID uuid.UUID, studentID uuid.UUID) (messaging.Conversation, error)
	ListConversations(ctx context.Context, viewerID uuid.UUID) ([]messaging.Summary, error)
	GetConversation(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (messaging.Conversation, error)
	ListMessages(ctx context.Context, viewerID uuid.UUID, conversationID uuid.UUID) ([]messaging.Message, error)
	Send(ctx context.Context, viewerID uuid.UUID, in SendMessageInput) (messaging.Message, error)
	MarkRead(ctx context.Context, viewerID uuid.UUID, conversationID uuid.UUID) (int64, error)
	MarkMessageRead(ctx context.Context, viewerID uuid.UUID, messageID uuid.UUID) (messaging.Message, error)
	UnreadCount(ctx context.Context, viewerID uuid.UUID) (int, error)
}

type Messaging struct {
	conversations messaging.Repository
	users         user.Repository
	notifier      notify.Sender
}

func NewMessagingUsecase(conversations messaging.Repository, users user.Repository, notifier notify.Sender) *Messaging {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Messaging{conversations: conversations, users: users, notifier: notifier}
}

// StartConversation opens, or returns, the one conversation between the
// calling recruiter and a student. Only approved recruiters initiate contact.
func (s *Messaging) StartConversation(ctx context.Context, viewerID uuid.UUID, studentID uuid.UUID) (messaging.Conversation, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return messaging.Conversation{}, err
	}
	if !authz.IsRecruiter(acc) {
		return messaging.Conversation{}, ErrForbidden
	}
	if !authz.IsApprovedRecruiter(acc) {
		return messaging.Conversation{}, ErrForbidden
	}
	profile, _ := acc.RecruiterProfile()

	if studentID == uuid.Nil {
		return messaging.Conversation{}, ErrInvalidInput
	}
	if _, err := s.users.GetStudent(ctx, studentID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return messaging.Conversation{}, ErrInvalidInput
		}
		return messaging.Conversation{}, ErrInternal
	}

	conv, err := s.conversations.GetOrCreateConversation(ctx, profile.ID, studentID)
	if err != nil {
		return messaging.Conversation{}, ErrInternal
	}
	return conv, nil
}

func (s *Messaging) ListConversations(ctx context.Context, viewerID uuid.UUID) ([]messaging.Summary, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return nil, err
	}

	if p, ok := acc.RecruiterProfile(); ok {
		out, err := s.conversations.ListByRecruiter(ctx, p.ID, acc.ID)
		if err != nil {
			return nil, ErrInternal
		}
		return out, nil
	}
	if p, ok := acc.StudentProfile(); ok {
		out, err := s.conversations.ListByStudent(ctx, p.ID, acc.ID)
		if err != nil {
			return nil, ErrInternal
		}
		return out, nil
	}
	// admins hold no side of any conversation
	if authz.IsAdmin(acc) {
		return []messaging.Summary{}, nil
	}
	return nil, ErrForbidden
}

func (s *Messaging) GetConversation(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (messaging.Conversation, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return messaging.Conversation{}, err
	}
	return s.participantConversation(ctx, acc, id)
}

func (s *Messaging) ListMessages(ctx context.Context, viewerID uuid.UUID, conversationID uuid.UUID) ([]messaging.Message, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.participantConversation(ctx, acc, conversationID); err != nil {
		return nil, err
	}

	msgs, err := s.conversations.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, ErrInternal
	}
	return msgs, nil
}

// Send delivers a message. Recruiters must be approved and open the
// conversation by naming the student; students reply into conversations a
// recruiter already opened.
func (s *Messaging) Send(ctx context.Context, viewerID uuid.UUID, in SendMessageInput) (messaging.Message, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return messaging.Message{}, err
	}

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return messaging.Message{}, ErrInvalidInput
	}

	var conv messaging.Conversation
	switch {
	case authz.IsRecruiter(acc):
		if !authz.IsApprovedRecruiter(acc) {
			return messaging.Message{}, ErrForbidden
		}
		profile, _ := acc.RecruiterProfile()

		switch {
		case in.ConversationID != uuid.Nil:
			conv, err = s.participantConversation(ctx, acc, in.ConversationID)
			if err != nil {
				return messaging.Message{}, err
			}
		case in.StudentID != uuid.Nil:
			if _, err := s.users.GetStudent(ctx, in.StudentID); err != nil {
				if errors.Is(err, user.ErrNotFound) {
					return messaging.Message{}, ErrInvalidInput
				}
				return messaging.Message{}, ErrInternal
			}
			conv, err = s.conversations.GetOrCreateConversation(ctx, profile.ID, in.StudentID)
			if err != nil {
				return messaging.Message{}, ErrInternal
			}
		default:
			return messaging.Message{}, ErrInvalidInput
		}

	case authz.IsStudent(acc):
		if in.ConversationID == uuid.Nil {
			return messaging.Message{}, ErrInvalidInput
		}
		conv, err = s.participantConversation(ctx, acc, in.ConversationID)
		if err != nil {
			return messaging.Message{}, err
		}

	default:
		return messaging.Message{}, ErrForbidden
	}

	m := messaging.Message{
		ID:             uuid.New(),
		ConversationID: conv.ID,
		SenderID:       acc.ID,
		Content:        content,
	}
	if err := s.conversations.CreateMessage(ctx, m); err != nil {
		return messaging.Message{}, ErrInternal
	}
	m.SenderName = acc.DisplayName()
	m.SenderRole = string(acc.Role)

	recipient := conv.StudentUserID
	if acc.ID == conv.StudentUserID {
		recipient = conv.RecruiterUserID
	}
	s.notifier.MessageReceived(notify.MessageEvent{
		ConversationID:  conv.ID,
		SenderName:      m.SenderName,
		Preview:         messaging.PreviewText(content),
		RecipientUserID: recipient,
	})

	return m, nil
}

// MarkRead flags the other side's messages as read and reports how many
// changed. The reader's own messages are never touched.
func (s *Messaging) MarkRead(ctx context.Context, viewerID uuid.UUID, conversationID uuid.UUID) (int64, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return 0, err
	}
	if _, err := s.participantConversation(ctx, acc, conversationID); err != nil {
		return 0, err
	}

	n, err := s.conversations.MarkConversationRead(ctx, conversationID, acc.ID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

// MarkMessageRead flags a single message. A sender marking their own message
// is a no-op; only messages from the other side gain the flag.
func (s *Messaging) MarkMessageRead(ctx context.Context, viewerID uuid.UUID, messageID uuid.UUID) (messaging.Message, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return messaging.Message{}, err
	}

	m, err := s.conversations.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, messaging.ErrMessageNotFound) {
			return messaging.Message{}, messaging.ErrMessageNotFound
		}
		return messaging.Message{}, ErrInternal
	}
	if _, err := s.participantConversation(ctx, acc, m.ConversationID); err != nil {
		return messaging.Message{}, messaging.ErrMessageNotFound
	}
	if m.SenderID == acc.ID {
		return m, nil
	}

	if !m.IsRead {
		if err := s.conversations.MarkMessageRead(ctx, messageID); err != nil {
			return messaging.Message{}, ErrInternal
		}
		m.IsRead = true
	}
	return m, nil
}

func (s *Messaging) UnreadCount(ctx context.Context, viewerID uuid.UUID) (int, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return 0, err
	}

	if p, ok := acc.RecruiterProfile(); ok {
		n, err := s.conversations.UnreadCountForRecruiter(ctx, p.ID, acc.ID)
		if err != nil {
			return 0, ErrInternal
		}
		return n, nil
	}
	if p, ok := acc.StudentProfile(); ok {
		n, err := s.conversations.UnreadCountForStudent(ctx, p.ID, acc.ID)
		if err != nil {
			return 0, ErrInternal
		}
		return n, nil
	}
	if authz.IsAdmin(acc) {
		return 0, nil
	}
	return 0, ErrForbidden
}

// participantConversation loads a conversation and hides it from anyone who
// is not on one of its two sides.
func (s *Messaging) participantConversation(ctx context.Context, acc user.Account, id uuid.UUID) (messaging.Conversation, error) {
	conv, err := s.conversations.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, messaging.ErrConversationNotFound) {
			return messaging.Conversation{}, messaging.ErrConversationNotFound
		}
		return messaging.Conversation{}, ErrInternal
	}
	if !conv.Participant(acc.ID) && !authz.IsAdmin(acc) {
		return messaging.Conversation{}, messaging.ErrConversationNotFound
	}
	return conv, nil
}
