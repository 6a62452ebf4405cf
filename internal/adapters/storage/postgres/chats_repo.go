package postgres

import (
	"context"
	"database/sql"
	"strings"

	"mia-backend/internal/domain/chat"
)

type ChatsRepo struct {
	db *sql.DB
}

func NewChatsRepo(db *sql.DB) *ChatsRepo {
	return &ChatsRepo{db: db}
}

func (r *ChatsRepo) Create(ctx context.Context, t chat.Turn) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chats (
			id, pet_id, user_message, ai_response,
			user_sentiment, emotion, ts
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		t.ID,
		t.PetID,
		t.UserMessage,
		t.Reply,
		t.Sentiment,
		t.Emotion,
		t.Timestamp,
	)
	return err
}

func (r *ChatsRepo) ListRecent(ctx context.Context, petID string, limit int) ([]chat.Turn, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = chat.DefaultHistoryLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, user_message, ai_response, user_sentiment, emotion, ts
		FROM chats
		WHERE pet_id = $1
		ORDER BY ts DESC
		LIMIT $2
	`, petID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Turn, 0)
	for rows.Next() {
		var t chat.Turn
		if err := rows.Scan(
			&t.ID,
			&t.PetID,
			&t.UserMessage,
			&t.Reply,
			&t.Sentiment,
			&t.Emotion,
			&t.Timestamp,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}
