package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/model"
)

// SaveMessage appends a message to its session transcript.
func (s *SQLiteStorage) SaveMessage(ctx context.Context, msg *model.ChatMessage) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if msg == nil {
		return fmt.Errorf("message cannot be nil")
	}
	if err := validateString(msg.SessionID, "sessionID"); err != nil {
		return err
	}
	if err := validateString(string(msg.Role), "role"); err != nil {
		return err
	}

	amounts, err := json.Marshal(msg.Amounts)
	if err != nil {
		return fmt.Errorf("failed to encode amounts: %w", err)
	}

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content, sentiment, amounts, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.SessionID, string(msg.Role), msg.Text, string(msg.Sentiment), string(amounts), createdAt)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get message id: %w", err)
	}
	msg.ID = id

	return nil
}

// GetHistory returns a session's messages in chronological order. A
// positive limit returns only the most recent messages, still oldest
// first; a non-positive limit returns the full transcript.
func (s *SQLiteStorage) GetHistory(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return nil, err
	}

	query := `SELECT id, session_id, role, content, sentiment, amounts, created_at
		 FROM messages WHERE session_id = ? ORDER BY created_at, id`
	args := []any{sessionID}
	if limit > 0 {
		query = `SELECT id, session_id, role, content, sentiment, amounts, created_at
		 FROM messages WHERE session_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		var role, sentiment, amounts string

		if err := rows.Scan(&msg.ID, &msg.SessionID, &role, &msg.Text, &sentiment, &amounts, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}

		msg.Role = model.MessageRole(role)
		msg.Sentiment = model.SentimentLabel(sentiment)
		if amounts != "" {
			if err := json.Unmarshal([]byte(amounts), &msg.Amounts); err != nil {
				return nil, fmt.Errorf("failed to decode amounts: %w", err)
			}
		}

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	// The limited query reads newest first; restore chronological order.
	if limit > 0 {
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
	}

	return messages, nil
}

// ClearHistory deletes all messages in a session. Returns
// common.ErrNotFound when the session has no messages.
func (s *SQLiteStorage) ClearHistory(ctx context.Context, sessionID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrNotFound
	}

	return nil
}
