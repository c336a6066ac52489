package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jose-valero/spelltable-bot/internal/domain"
)

type GameRepo struct{ db *sql.DB }

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

// Save: upsert por message_id. Los jugadores van como jsonb para conservar
// el orden de aparición.
func (r *GameRepo) Save(ctx context.Context, gs GameSession) error {
	players, err := json.Marshal(gs.Players)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO game_sessions (message_id, channel_id, players)
VALUES ($1,$2,$3::jsonb)
ON CONFLICT (message_id) DO UPDATE SET
  players    = EXCLUDED.players,
  updated_at = now()
`, gs.MessageID, gs.ChannelID, players)
	return err
}

func (r *GameRepo) Get(ctx context.Context, messageID string) (GameSession, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT message_id, channel_id, players, created_at, updated_at
  FROM game_sessions
 WHERE message_id = $1
`, messageID)

	var gs GameSession
	var players []byte
	err := row.Scan(&gs.MessageID, &gs.ChannelID, &players, &gs.CreatedAt, &gs.UpdatedAt)
	if err == sql.ErrNoRows {
		return GameSession{}, ErrNotFound
	}
	if err != nil {
		return GameSession{}, err
	}
	if err := json.Unmarshal(players, &gs.Players); err != nil {
		return GameSession{}, err
	}
	if gs.Players == nil {
		gs.Players = []domain.Player{}
	}
	return gs, nil
}

// DeleteStale borra sesiones sin actividad (los juegos no se cierran solos).
func (r *GameRepo) DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM game_sessions
 WHERE updated_at < now() - ($1 * interval '1 second')
`, int64(olderThan.Seconds()))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
