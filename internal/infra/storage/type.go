package storage

import (
	"time"

	"github.com/jose-valero/spelltable-bot/internal/domain"
)

type CardImage struct {
	DiscordUserID string
	ImageURL      string
	CreatedAt     time.Time
	ExpiresAt     *time.Time // NULL = no expira (búsqueda por nombre sin set)
}

type GameSession struct {
	MessageID string
	ChannelID string
	Players   []domain.Player // orden de aparición en el mensaje original
	CreatedAt time.Time
	UpdatedAt time.Time
}
