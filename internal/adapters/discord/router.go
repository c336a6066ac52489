package discord

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/spelltable-bot/internal/app/service"
)

// Errores de ruteo: el server HTTP los traduce a 404/400. Ningún handler
// corre side effects antes de que el ruteo matchee.
var (
	ErrUnknownCommand     = errors.New("command not found")
	ErrUnknownComponent   = errors.New("component not found")
	ErrUnknownInteraction = errors.New("unsupported interaction type")
)

type Router struct {
	appID string
	card  *service.CardService
	game  *service.GameService
}

func NewRouter(appID string, card *service.CardService, game *service.GameService) *Router {
	return &Router{appID: appID, card: card, game: game}
}

// Route inspecciona type y delega. El ping es el camino más corto: el
// handshake de Discord no tolera llamadas downstream.
func (r *Router) Route(ctx context.Context, ic *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	switch ic.Type {
	case discordgo.InteractionPing:
		return Pong(), nil

	case discordgo.InteractionApplicationCommand:
		return r.handleCommand(ctx, ic)

	case discordgo.InteractionApplicationCommandAutocomplete:
		return r.handleAutocomplete(ctx, ic)

	case discordgo.InteractionMessageComponent:
		return r.handleComponent(ctx, ic)

	default:
		return nil, ErrUnknownInteraction
	}
}

func (r *Router) handleCommand(ctx context.Context, ic *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	data := ic.ApplicationCommandData()
	log.Printf("cmd: /%s by=%s guild=%s", data.Name, userID(ic), ic.GuildID)

	switch strings.ToLower(data.Name) {
	case "card":
		return r.handleCardCommand(ctx, ic, data)
	case "hadit":
		return r.handleHadItCommand(), nil
	case "invite":
		return r.handleInviteCommand(), nil
	case "newgame":
		return r.handleNewGameCommand(), nil
	}
	return nil, ErrUnknownCommand
}
