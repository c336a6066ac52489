package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	DatabaseURL   string
	DiscordToken  string // solo lo usa cmd/register
	ApplicationID string
	PublicKey     string // hex, para verificar firmas ed25519
	TestGuildID   string // opcional: registra comandos solo en ese guild
	ClientID      string // OAuth (opcionales)
	ClientSecret  string
	HTTPAddr      string // opcional, default :8080

	PrinterEnabled bool
	PrinterURL     string
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		DatabaseURL:   get("DATABASE_URL", true),
		DiscordToken:  get("DISCORD_TOKEN", false),
		ApplicationID: get("DISCORD_APPLICATION_ID", true),
		PublicKey:     get("DISCORD_PUBLIC_KEY", true),
		TestGuildID:   get("DISCORD_TEST_GUILD_ID", false),
		ClientID:      get("DISCORD_CLIENT_ID", false),
		ClientSecret:  get("DISCORD_CLIENT_SECRET", false),
		HTTPAddr:      get("HTTP_ADDR", false),
		PrinterURL:    get("PRINTER_WEBHOOK_URL", false),
	}
	switch strings.ToLower(get("PRINTER_ENABLED", false)) {
	case "1", "true", "yes":
		cfg.PrinterEnabled = true
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	return cfg
}
