package main

import (
	"context"
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/spelltable-bot/internal/adapters/discord"
	"github.com/jose-valero/spelltable-bot/internal/adapters/httpdiscord"
	"github.com/jose-valero/spelltable-bot/internal/adapters/printer"
	"github.com/jose-valero/spelltable-bot/internal/adapters/scryfall"
	"github.com/jose-valero/spelltable-bot/internal/app/service"
	"github.com/jose-valero/spelltable-bot/internal/infra/config"
	"github.com/jose-valero/spelltable-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	pubkey, err := hex.DecodeString(cfg.PublicKey)
	if err != nil {
		log.Fatalf("DISCORD_PUBLIC_KEY inválida: %v", err)
	}

	// DB
	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}
	log.Println("✅ DB lista y migrada")

	// Repos
	imagesRepo := storage.NewCardImageRepo(db)
	gamesRepo := storage.NewGameRepo(db)

	// Scryfall client
	scry := scryfall.New()

	// Printer (colaborador opcional)
	var pr *printer.Client
	if cfg.PrinterEnabled {
		pr = printer.New(cfg.PrinterURL)
		log.Println("🖨️ printer webhook habilitado")
	}

	// Services
	cardSvc := service.NewCardService(scry, imagesRepo, printerOrNil(pr))
	gameSvc := service.NewGameService(gamesRepo)

	// Router + HTTP
	router := discordrouter.NewRouter(cfg.ApplicationID, cardSvc, gameSvc)
	proxy := httpdiscord.NewImageProxy(imagesRepo, "spelltable-discord-bot")
	srv := httpdiscord.New(cfg.ApplicationID, pubkey, router, proxy)
	go srv.Start(cfg.HTTPAddr)
	log.Printf("✅ webhook de interacciones escuchando en %s", cfg.HTTPAddr)

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}

// printerOrNil evita meter un *Client nil adentro de la interfaz.
func printerOrNil(pr *printer.Client) service.PrinterNotifier {
	if pr == nil {
		return nil
	}
	return pr
}
