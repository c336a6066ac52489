package httpdiscord

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jose-valero/spelltable-bot/internal/infra/storage"
)

// Imagen de dorso de carta que servimos cuando el usuario nunca buscó nada.
const cardBackURL = "https://backs.scryfall.io/large/0/a/0aeebaf5-8c7d-4636-9e82-8c27447861f7.jpg"

type ImageStore interface {
	Get(ctx context.Context, discordUserID string) (storage.CardImage, error)
}

// ImageProxy sirve GET /{user}: los bytes de la última carta buscada por
// ese usuario, o el dorso si no hay nada guardado. Nunca 404.
type ImageProxy struct {
	images    ImageStore
	http      *http.Client
	userAgent string
	fallback  string
}

func NewImageProxy(images ImageStore, userAgent string) *ImageProxy {
	return &ImageProxy{
		images:    images,
		http:      &http.Client{Timeout: 10 * time.Second},
		userAgent: userAgent,
		fallback:  cardBackURL,
	}
}

func (p *ImageProxy) handleImage(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")

	url := p.fallback
	if ci, err := p.images.Get(r.Context(), user); err == nil {
		// cartas doble cara guardan dos URLs separadas por espacio;
		// servimos la primera
		if fields := strings.Fields(ci.ImageURL); len(fields) > 0 {
			url = fields[0]
		}
	} else if err != storage.ErrNotFound {
		log.Printf("images: get user=%s: %v", user, err)
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, url, nil)
	if err != nil {
		http.Error(w, "bad image url", http.StatusBadGateway)
		return
	}
	req.Header.Set("User-Agent", p.userAgent)

	res, err := p.http.Do(req)
	if err != nil {
		log.Printf("images: fetch %s: %v", url, err)
		http.Error(w, "image fetch failed", http.StatusBadGateway)
		return
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Printf("images: fetch %s: status %d", url, res.StatusCode)
		http.Error(w, "image fetch failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := io.Copy(w, res.Body); err != nil {
		log.Printf("images: stream: %v", err)
	}
}
