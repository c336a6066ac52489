package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type CardImageRepo struct{ db *sql.DB }

func NewCardImageRepo(db *sql.DB) *CardImageRepo { return &CardImageRepo{db: db} }

// Put: upsert por usuario. ttl == 0 significa sin expiración.
func (r *CardImageRepo) Put(ctx context.Context, discordUserID, imageURL string, ttl time.Duration) error {
	var expires *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expires = &t
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO card_images (discord_user_id, image_url, expires_at)
VALUES ($1,$2,$3)
ON CONFLICT (discord_user_id) DO UPDATE SET
  image_url  = EXCLUDED.image_url,
  expires_at = EXCLUDED.expires_at,
  created_at = now()
`, discordUserID, imageURL, expires)
	return err
}

// Get ignora filas vencidas (el janitor las borra después).
func (r *CardImageRepo) Get(ctx context.Context, discordUserID string) (CardImage, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT discord_user_id, image_url, created_at, expires_at
  FROM card_images
 WHERE discord_user_id = $1
   AND (expires_at IS NULL OR expires_at > now())
`, discordUserID)

	var ci CardImage
	err := row.Scan(&ci.DiscordUserID, &ci.ImageURL, &ci.CreatedAt, &ci.ExpiresAt)
	if err == sql.ErrNoRows {
		return CardImage{}, ErrNotFound
	}
	return ci, err
}

func (r *CardImageRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM card_images
 WHERE expires_at IS NOT NULL AND expires_at <= now()
`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
