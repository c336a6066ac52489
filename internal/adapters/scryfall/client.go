package scryfall

import (
	"context"
	"net/url"
	"strings"

	"github.com/jose-valero/spelltable-bot/internal/domain"
)

// RandomCard devuelve la URL de imagen de una carta al azar.
func (c *Client) RandomCard(ctx context.Context) (string, error) {
	var dto cardDTO
	if err := c.doJSON(ctx, "/cards/random", nil, &dto); err != nil {
		return "", err
	}
	return dto.ImageURIs.best(), nil
}

// NamedCard busca por nombre exacto. Para cartas doble cara (cuando cada
// cara trae su imagen) concatena ambas URLs con un espacio.
func (c *Client) NamedCard(ctx context.Context, exact string) (*domain.NamedCard, error) {
	q := url.Values{}
	q.Set("exact", exact)

	var dto cardDTO
	if err := c.doJSON(ctx, "/cards/named", q, &dto); err != nil {
		return nil, err
	}

	img := dto.ImageURIs.best()
	if len(dto.CardFaces) >= 2 && everyFaceHasImage(dto) {
		faces := make([]string, 0, len(dto.CardFaces))
		for _, f := range dto.CardFaces {
			faces = append(faces, f.ImageURIs.best())
		}
		img = strings.Join(faces, " ")
	}

	return &domain.NamedCard{
		ImageURL:        img,
		ScryfallURL:     dto.ScryfallURI,
		PrintsSearchURL: dto.PrintsSearchURI,
	}, nil
}

func everyFaceHasImage(dto cardDTO) bool {
	for _, f := range dto.CardFaces {
		if f.ImageURIs == nil {
			return false
		}
	}
	return true
}

// AutocompleteNames devuelve sugerencias de nombres en el orden del upstream.
func (c *Client) AutocompleteNames(ctx context.Context, partial string) ([]string, error) {
	q := url.Values{}
	q.Set("q", partial)

	var dto autocompleteDTO
	if err := c.doJSON(ctx, "/cards/autocomplete", q, &dto); err != nil {
		return nil, err
	}
	return dto.Data, nil
}

// Printings resuelve primero la carta por nombre para obtener el
// prints_search_uri y después baja la lista completa de impresiones.
func (c *Client) Printings(ctx context.Context, exact string) (*domain.PrintList, error) {
	card, err := c.NamedCard(ctx, exact)
	if err != nil {
		return nil, err
	}

	var dto printsDTO
	if err := c.doJSONRaw(ctx, card.PrintsSearchURL, &dto); err != nil {
		return nil, err
	}

	out := &domain.PrintList{
		Sets:  make([]domain.SetRef, 0, len(dto.Data)),
		Cards: make([]domain.Printing, 0, len(dto.Data)),
	}
	for _, p := range dto.Data {
		out.Sets = append(out.Sets, domain.SetRef{
			Set:             p.Set,
			CollectorNumber: p.CollectorNumber,
		})
		out.Cards = append(out.Cards, domain.Printing{
			Set:             p.Set,
			CollectorNumber: p.CollectorNumber,
			ImageURL:        p.ImageURIs.best(),
			ScryfallURL:     p.ScryfallURI,
		})
	}
	return out, nil
}
