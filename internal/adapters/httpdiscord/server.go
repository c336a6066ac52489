package httpdiscord

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/spelltable-bot/internal/adapters/discord"
)

// Router es lo que implementa internal/adapters/discord.Router.
type Router interface {
	Route(ctx context.Context, ic *discordgo.Interaction) (*discordgo.InteractionResponse, error)
}

type Server struct {
	appID  string
	pubkey ed25519.PublicKey
	router Router
	images *ImageProxy
	mux    *http.ServeMux
}

func New(appID string, pubkey ed25519.PublicKey, router Router, images *ImageProxy) *Server {
	s := &Server{appID: appID, pubkey: pubkey, router: router, images: images, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /{user}", s.images.handleImage)
	s.mux.HandleFunc("POST /{$}", s.handleInteraction)
}

func (s *Server) Handler() http.Handler { return s.mux }

// handleRoot: liveness + confirma que el webhook apunta a la app correcta.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("👋 " + s.appID))
}

// handleInteraction es el único endpoint de interacciones. Primero la
// firma, después el ruteo: sin firma válida no corre ningún handler.
func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, s.pubkey) {
		http.Error(w, "Bad request signature.", http.StatusUnauthorized)
		return
	}

	var ic discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&ic); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid interaction payload")
		return
	}

	resp, err := s.router.Route(r.Context(), &ic)
	switch err {
	case nil:
	case discord.ErrUnknownCommand:
		writeJSONError(w, http.StatusNotFound, "Command not found")
		return
	default:
		// componentes desconocidos y types no soportados van al mismo 400
		writeJSONError(w, http.StatusBadRequest, "Unknown Type")
		return
	}

	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) Start(addr string) {
	log.Printf("🌐 HTTP listening on %s", addr)
	if err := http.ListenAndServe(addr, s.mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
