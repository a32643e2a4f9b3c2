package postgres

import (
	"context"
	"database/sql"
	"errors"

	"jobportal/internal/database"
	"jobportal/internal/domain/messaging"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MessagingRepository struct {
	db database.DB
}

func NewMessagingRepository(db database.DB) *MessagingRepository {
	return &MessagingRepository{db: db}
}

const conversationQuery = `
	SELECT c.id, c.recruiter_id, c.student_id, c.created_at, c.updated_at,
	       r.company_name, s.first_name || ' ' || s.last_name, r.user_id, s.user_id
	FROM conversations c
	JOIN recruiters r ON r.id = c.recruiter_id
	JOIN students s ON s.id = c.student_id`

func (r *MessagingRepository) GetOrCreateConversation(ctx context.Context, recruiterID, studentID uuid.UUID) (messaging.Conversation, error) {
	// The unique pair constraint makes this race-safe: concurrent senders both
	// land on the same row, whichever insert wins.
	if _, err := r.db.Exec(ctx,
		`INSERT INTO conversations (id, recruiter_id, student_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (recruiter_id, student_id) DO NOTHING`,
		uuid.New(), recruiterID, studentID,
	); err != nil {
		return messaging.Conversation{}, err
	}

	row := r.db.QueryRow(ctx,
		conversationQuery+` WHERE c.recruiter_id = $1 AND c.student_id = $2`,
		recruiterID, studentID)
	return scanConversation(row)
}

func (r *MessagingRepository) GetConversation(ctx context.Context, id uuid.UUID) (messaging.Conversation, error) {
	row := r.db.QueryRow(ctx, conversationQuery+` WHERE c.id = $1`, id)
	return scanConversation(row)
}

func (r *MessagingRepository) ListByRecruiter(ctx context.Context, recruiterID, viewerUserID uuid.UUID) ([]messaging.Summary, error) {
	return r.listSummaries(ctx, ` WHERE c.recruiter_id = $1`, recruiterID, viewerUserID)
}

func (r *MessagingRepository) ListByStudent(ctx context.Context, studentID, viewerUserID uuid.UUID) ([]messaging.Summary, error) {
	return r.listSummaries(ctx, ` WHERE c.student_id = $1`, studentID, viewerUserID)
}

func (r *MessagingRepository) listSummaries(ctx context.Context, where string, sideID, viewerUserID uuid.UUID) ([]messaging.Summary, error) {
	rows, err := r.db.Query(ctx, conversationQuery+where+` ORDER BY c.updated_at DESC`, sideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]messaging.Summary, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, messaging.Summary{Conversation: c})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		preview, err := r.lastMessage(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].LastMessage = preview

		unread, err := r.unreadInConversation(ctx, out[i].ID, viewerUserID)
		if err != nil {
			return nil, err
		}
		out[i].UnreadCount = unread
	}
	return out, nil
}

func (r *MessagingRepository) lastMessage(ctx context.Context, conversationID uuid.UUID) (*messaging.Preview, error) {
	row := r.db.QueryRow(ctx,
		`SELECT m.content, u.username, m.created_at
		 FROM messages m
		 JOIN users u ON u.id = m.sender_id
		 WHERE m.conversation_id = $1
		 ORDER BY m.created_at DESC
		 LIMIT 1`, conversationID)

	var p messaging.Preview
	if err := row.Scan(&p.Content, &p.Sender, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Content = messaging.PreviewText(p.Content)
	return &p, nil
}

func (r *MessagingRepository) unreadInConversation(ctx context.Context, conversationID, viewerUserID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages
		 WHERE conversation_id = $1 AND NOT is_read AND sender_id <> $2`,
		conversationID, viewerUserID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *MessagingRepository) CreateMessage(ctx context.Context, m messaging.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO messages (id, conversation_id, sender_id, content, is_read)
		 VALUES ($1, $2, $3, $4, FALSE)`,
		m.ID, m.ConversationID, m.SenderID, m.Content,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE conversations SET updated_at = now() WHERE id = $1`,
		m.ConversationID,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *MessagingRepository) GetMessage(ctx context.Context, id uuid.UUID) (messaging.Message, error) {
	row := r.db.QueryRow(ctx,
		`SELECT m.id, m.conversation_id, m.sender_id, u.username, u.role, m.content, m.is_read, m.created_at
		 FROM messages m
		 JOIN users u ON u.id = m.sender_id
		 WHERE m.id = $1`, id)
	return scanMessage(row)
}

func (r *MessagingRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]messaging.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.conversation_id, m.sender_id, u.username, u.role, m.content, m.is_read, m.created_at
		 FROM messages m
		 JOIN users u ON u.id = m.sender_id
		 WHERE m.conversation_id = $1
		 ORDER BY m.created_at`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]messaging.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MessagingRepository) MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE
		 WHERE conversation_id = $1 AND sender_id <> $2 AND NOT is_read`,
		conversationID, readerID)
}

func (r *MessagingRepository) MarkMessageRead(ctx context.Context, messageID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, messageID)
	if err != nil {
		return err
	}
	if n == 0 {
		return messaging.ErrMessageNotFound
	}
	return nil
}

func (r *MessagingRepository) UnreadCountForRecruiter(ctx context.Context, recruiterID, userID uuid.UUID) (int, error) {
	return r.unreadCount(ctx, `c.recruiter_id`, recruiterID, userID)
}

func (r *MessagingRepository) UnreadCountForStudent(ctx context.Context, studentID, userID uuid.UUID) (int, error) {
	return r.unreadCount(ctx, `c.student_id`, studentID, userID)
}

func (r *MessagingRepository) unreadCount(ctx context.Context, sideColumn string, sideID, userID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages m
		 JOIN conversations c ON c.id = m.conversation_id
		 WHERE `+sideColumn+` = $1 AND NOT m.is_read AND m.sender_id <> $2`,
		sideID, userID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanConversation(row database.Row) (messaging.Conversation, error) {
	var c messaging.Conversation
	err := row.Scan(&c.ID, &c.RecruiterID, &c.StudentID, &c.CreatedAt, &c.UpdatedAt,
		&c.CompanyName, &c.StudentName, &c.RecruiterUserID, &c.StudentUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return messaging.Conversation{}, messaging.ErrConversationNotFound
		}
		return messaging.Conversation{}, err
	}
	return c, nil
}

func scanMessage(row database.Row) (messaging.Message, error) {
	var m messaging.Message
	err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName, &m.SenderRole,
		&m.Content, &m.IsRead, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return messaging.Message{}, messaging.ErrMessageNotFound
		}
		return messaging.Message{}, err
	}
	return m, nil
}
