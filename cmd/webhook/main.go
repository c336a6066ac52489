package main

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"

	discordrouter "github.com/jose-valero/spelltable-bot/internal/adapters/discord"
	"github.com/jose-valero/spelltable-bot/internal/adapters/printer"
	"github.com/jose-valero/spelltable-bot/internal/adapters/scryfall"
	"github.com/jose-valero/spelltable-bot/internal/app/service"
	"github.com/jose-valero/spelltable-bot/internal/infra/storage"
)

// Variante Lambda del webhook de interacciones: misma verificación y mismo
// router que cmd/bot, adaptados a API Gateway v2.

var (
	pubkey ed25519.PublicKey
	router *discordrouter.Router
)

func init() {
	k, err := hex.DecodeString(os.Getenv("DISCORD_PUBLIC_KEY"))
	if err != nil {
		fmt.Println("DISCORD_PUBLIC_KEY inválida:", err)
	}
	pubkey = k

	// DB opcional: sin DATABASE_URL el bot responde igual, solo que sin
	// persistencia de imágenes ni sesiones
	var imagesRepo service.CardImageRepo
	var gamesRepo service.GameRepo
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := storage.Open(context.Background(), dsn)
		if err != nil {
			fmt.Println("storage open:", err)
		} else {
			imagesRepo = storage.NewCardImageRepo(db)
			gamesRepo = storage.NewGameRepo(db)
		}
	}

	var pr service.PrinterNotifier
	switch strings.ToLower(os.Getenv("PRINTER_ENABLED")) {
	case "1", "true", "yes":
		pr = printer.New(os.Getenv("PRINTER_WEBHOOK_URL"))
	}

	cardSvc := service.NewCardService(scryfall.New(), imagesRepo, pr)
	gameSvc := service.NewGameService(gamesRepo)
	router = discordrouter.NewRouter(os.Getenv("DISCORD_APPLICATION_ID"), cardSvc, gameSvc)
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	body := req.Body
	if req.IsBase64Encoded {
		dec, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return textResponse(http.StatusBadRequest, "invalid base64"), nil
		}
		body = string(dec)
	}

	// reconstruimos un http.Request para reusar VerifyInteraction
	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, "/", strings.NewReader(body))
	if err != nil {
		return textResponse(http.StatusInternalServerError, "internal error"), nil
	}
	for _, h := range []string{"x-signature-ed25519", "x-signature-timestamp"} {
		if v := req.Headers[h]; v != "" {
			hr.Header.Set(h, v)
		}
	}
	if !discordgo.VerifyInteraction(hr, pubkey) {
		return textResponse(http.StatusUnauthorized, "Bad request signature."), nil
	}

	var ic discordgo.Interaction
	if err := json.Unmarshal([]byte(body), &ic); err != nil {
		return jsonError(http.StatusBadRequest, "Invalid interaction payload"), nil
	}

	resp, err := router.Route(ctx, &ic)
	switch err {
	case nil:
	case discordrouter.ErrUnknownCommand:
		return jsonError(http.StatusNotFound, "Command not found"), nil
	default:
		return jsonError(http.StatusBadRequest, "Unknown Type"), nil
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return textResponse(http.StatusInternalServerError, "internal error"), nil
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json;charset=UTF-8"},
		Body:       string(out),
	}, nil
}

func textResponse(status int, body string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{StatusCode: status, Body: body}
}

func jsonError(status int, msg string) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json;charset=UTF-8"},
		Body:       string(b),
	}
}

func main() { lambda.Start(handler) }
