package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/jose-valero/spelltable-bot/internal/domain"
	"github.com/jose-valero/spelltable-bot/internal/infra/storage"
)

const startingLife = 40

var (
	reMention  = regexp.MustCompile(`<@!?(\d+)>`)
	reLifeLine = regexp.MustCompile(`<@!?(\d+)> : (-?\d+)`)
)

// GameService maneja el estado del contador de vidas. La fuente de verdad
// es la sesión persistida por message_id; el texto del mensaje anterior
// sirve de fallback para reconstruirla.
type GameService struct {
	games GameRepo
}

func NewGameService(games GameRepo) *GameService {
	return &GameService{games: games}
}

// Join agrega la línea del jugador al mensaje existente. Sin dedup: unirse
// dos veces es comportamiento aceptado.
func (s *GameService) Join(content, userID string) string {
	return fmt.Sprintf("%s\n<@%s> has joined the game", content, userID)
}

// Start arranca la partida: una línea por mención distinta, en orden de
// primera aparición, todos con la vida inicial. Persiste la sesión.
func (s *GameService) Start(ctx context.Context, messageID, channelID, content string) string {
	players := scanPlayers(content)
	s.save(ctx, storage.GameSession{
		MessageID: messageID,
		ChannelID: channelID,
		Players:   players,
	})
	return renderLife(players)
}

// Adjust aplica el delta a la vida de quien apretó el botón. Si la sesión
// no existe (bot redeployado, mensaje viejo) la reconstruye del texto.
func (s *GameService) Adjust(ctx context.Context, messageID, content, userID string, delta int) string {
	gs, ok := s.load(ctx, messageID)
	if !ok {
		gs = storage.GameSession{
			MessageID: messageID,
			Players:   parseLifeLines(content),
		}
	}

	for i := range gs.Players {
		if gs.Players[i].ID == userID {
			gs.Players[i].Life += delta
			break
		}
	}

	s.save(ctx, gs)
	return renderLife(gs.Players)
}

// save/load toleran correr sin repo (cmd/webhook sin DATABASE_URL): en ese
// modo el estado vive solo en el texto del mensaje.
func (s *GameService) save(ctx context.Context, gs storage.GameSession) {
	if s.games == nil {
		return
	}
	if err := s.games.Save(ctx, gs); err != nil {
		log.Printf("game: save session msg=%s: %v", gs.MessageID, err)
	}
}

func (s *GameService) load(ctx context.Context, messageID string) (storage.GameSession, bool) {
	if s.games == nil {
		return storage.GameSession{}, false
	}
	gs, err := s.games.Get(ctx, messageID)
	if err != nil {
		if err != storage.ErrNotFound {
			log.Printf("game: load session msg=%s: %v", messageID, err)
		}
		return storage.GameSession{}, false
	}
	return gs, true
}

// scanPlayers: menciones distintas en orden de primera aparición.
func scanPlayers(content string) []domain.Player {
	seen := map[string]bool{}
	var players []domain.Player
	for _, m := range reMention.FindAllStringSubmatch(content, -1) {
		id := m[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		players = append(players, domain.Player{ID: id, Life: startingLife})
	}
	return players
}

// parseLifeLines reconstruye los totales desde un mensaje ya renderizado.
func parseLifeLines(content string) []domain.Player {
	var players []domain.Player
	for _, m := range reLifeLine.FindAllStringSubmatch(content, -1) {
		life, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		players = append(players, domain.Player{ID: m[1], Life: life})
	}
	return players
}

func renderLife(players []domain.Player) string {
	lines := make([]string, 0, len(players))
	for _, p := range players {
		lines = append(lines, fmt.Sprintf("<@%s> : %d", p.ID, p.Life))
	}
	return strings.Join(lines, "\n")
}
