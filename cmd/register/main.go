package main

import (
	"log"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/spelltable-bot/internal/adapters/discord"
)

// Registro one-shot de la tabla de comandos. No es parte del request path:
// se corre una vez desde la terminal. Con DISCORD_TEST_GUILD_ID registra
// solo en ese guild (propagación inmediata); global puede tardar minutos.
func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	token := os.Getenv("DISCORD_TOKEN")
	appID := os.Getenv("DISCORD_APPLICATION_ID")
	guildID := os.Getenv("DISCORD_TEST_GUILD_ID")
	if token == "" {
		log.Fatal("faltante env DISCORD_TOKEN")
	}
	if appID == "" {
		log.Fatal("faltante env DISCORD_APPLICATION_ID")
	}

	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(token)), "bot ") {
		token = "Bot " + strings.TrimSpace(token)
	}
	s, err := discordgo.New(token)
	if err != nil {
		log.Fatal(err)
	}

	// PUT reemplaza la tabla entera, no hace falta borrar comandos viejos
	cmds, err := s.ApplicationCommandBulkOverwrite(appID, guildID, discordrouter.Commands)
	if err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	scope := "global"
	if guildID != "" {
		scope = "guild " + guildID
	}
	log.Printf("✅ %d comandos registrados (%s)", len(cmds), scope)
}
