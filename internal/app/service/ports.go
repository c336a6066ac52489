package service

import (
	"context"
	"time"

	"github.com/jose-valero/spelltable-bot/internal/adapters/printer"
	"github.com/jose-valero/spelltable-bot/internal/domain"
	"github.com/jose-valero/spelltable-bot/internal/infra/storage"
)

// Lo implementa internal/adapters/scryfall.Client
type ScryfallAPI interface {
	RandomCard(ctx context.Context) (string, error)
	NamedCard(ctx context.Context, exact string) (*domain.NamedCard, error)
	AutocompleteNames(ctx context.Context, partial string) ([]string, error)
	Printings(ctx context.Context, exact string) (*domain.PrintList, error)
}

// Lo implementa internal/infra/storage.CardImageRepo
type CardImageRepo interface {
	Put(ctx context.Context, discordUserID, imageURL string, ttl time.Duration) error
	Get(ctx context.Context, discordUserID string) (storage.CardImage, error)
}

// Lo implementa internal/infra/storage.GameRepo
type GameRepo interface {
	Save(ctx context.Context, gs storage.GameSession) error
	Get(ctx context.Context, messageID string) (storage.GameSession, error)
}

// Lo implementa internal/adapters/printer.Client (best-effort, nunca falla)
type PrinterNotifier interface {
	Notify(ctx context.Context, job printer.PrintJob)
}
