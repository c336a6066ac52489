package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jose-valero/spelltable-bot/internal/adapters/printer"
	"github.com/jose-valero/spelltable-bot/internal/domain"
)

const (
	noCardsMsg = "# No cards found\nYour search didn't match any cards."
	noSetMsg   = "# Set not found\nYour search didn't match any printings."

	// las búsquedas con set expiran, las por nombre quedan para siempre
	setImageTTL = time.Hour

	maxChoices = 25 // límite de Discord para autocomplete
)

// CardReply es lo que el handler convierte en envelope: contenido y,
// opcionalmente, un botón de link a Scryfall.
type CardReply struct {
	Content string
	LinkURL string
}

type CardService struct {
	scry    ScryfallAPI
	images  CardImageRepo
	printer PrinterNotifier
}

func NewCardService(scry ScryfallAPI, images CardImageRepo, pr PrinterNotifier) *CardService {
	return &CardService{scry: scry, images: images, printer: pr}
}

// Search implementa el orden de decisión del comando /card:
// set → nombre → carta al azar. Cualquier fallo del upstream termina en
// un mensaje de "no encontrado", nunca en error hacia el caller.
func (s *CardService) Search(ctx context.Context, userID, name, set string) (*CardReply, error) {
	if set != "" {
		return s.searchBySet(ctx, userID, name, set), nil
	}
	if name != "" {
		return s.searchByName(ctx, userID, name), nil
	}

	url, err := s.scry.RandomCard(ctx)
	if err != nil || url == "" {
		log.Printf("card: random: %v", err)
		return &CardReply{Content: noCardsMsg}, nil
	}
	// sin persistencia ni botón para la carta random
	return &CardReply{Content: url}, nil
}

func (s *CardService) searchBySet(ctx context.Context, userID, name, set string) *CardReply {
	prints, err := s.scry.Printings(ctx, name)
	if err != nil {
		log.Printf("card: printings %q: %v", name, err)
		return &CardReply{Content: noSetMsg}
	}

	// primer match exacto y case-sensitive, como el autocomplete de sets
	var found *domain.Printing
	for i := range prints.Cards {
		if prints.Cards[i].Set == set {
			found = &prints.Cards[i]
			break
		}
	}
	if found == nil || found.ImageURL == "" {
		return &CardReply{Content: noSetMsg}
	}

	s.persist(ctx, userID, found.ImageURL, setImageTTL)
	s.notifyPrinter(name, found.ImageURL, userID)
	return &CardReply{Content: found.ImageURL, LinkURL: found.ScryfallURL}
}

func (s *CardService) searchByName(ctx context.Context, userID, name string) *CardReply {
	card, err := s.scry.NamedCard(ctx, name)
	if err != nil {
		log.Printf("card: named %q: %v", name, err)
		return &CardReply{Content: noCardsMsg}
	}
	if card.ImageURL == "" {
		return &CardReply{Content: noCardsMsg}
	}

	s.persist(ctx, userID, card.ImageURL, 0)
	s.notifyPrinter(name, card.ImageURL, userID)
	return &CardReply{Content: card.ImageURL, LinkURL: card.ScryfallURL}
}

// persist guarda la última imagen buscada; si falla solo lo logueamos,
// la respuesta al usuario no depende del KV.
func (s *CardService) persist(ctx context.Context, userID, imageURL string, ttl time.Duration) {
	if s.images == nil || userID == "" {
		return
	}
	if err := s.images.Put(ctx, userID, imageURL, ttl); err != nil {
		log.Printf("card: persist image user=%s: %v", userID, err)
	}
}

func (s *CardService) notifyPrinter(name, imageURL, userID string) {
	if s.printer == nil {
		return
	}
	// fire-and-forget, no bloqueamos la respuesta de la interacción
	go s.printer.Notify(context.Background(), printer.PrintJob{
		Message:  name,
		ImageURL: imageURL,
		User:     userID,
	})
}

// SuggestNames: autocomplete del campo "name". Fallos del upstream →
// lista vacía.
func (s *CardService) SuggestNames(ctx context.Context, partial string) []string {
	names, err := s.scry.AutocompleteNames(ctx, partial)
	if err != nil {
		log.Printf("card: autocomplete %q: %v", partial, err)
		return nil
	}
	if len(names) > maxChoices {
		names = names[:maxChoices]
	}
	return names
}

// SuggestSets: autocomplete del campo "set" — resuelve las impresiones del
// nombre actual y filtra por prefijo (case-sensitive).
func (s *CardService) SuggestSets(ctx context.Context, name, partial string) []domain.SetRef {
	prints, err := s.scry.Printings(ctx, name)
	if err != nil {
		log.Printf("card: printings %q: %v", name, err)
		return nil
	}

	out := make([]domain.SetRef, 0, len(prints.Sets))
	for _, ref := range prints.Sets {
		if strings.HasPrefix(ref.Set, partial) {
			out = append(out, ref)
			if len(out) == maxChoices {
				break
			}
		}
	}
	return out
}
