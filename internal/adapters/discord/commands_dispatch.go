package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	scryfallButtonLabel = "View on Scryfall"
	hadItImageURL       = "https://i.pinimg.com/736x/f2/c0/1a/f2c01a4cc18f18b16f4adb71e1835314.jpg"
)

//--> /card: la única rama con lógica de verdad (set → nombre → random)
func (r *Router) handleCardCommand(ctx context.Context, ic *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponse, error) {
	name, _ := optStr(data.Options, "name")
	set, _ := optStr(data.Options, "set")

	reply, err := r.card.Search(ctx, userID(ic), name, set)
	if err != nil {
		return nil, err
	}
	if reply.LinkURL != "" {
		return MessageWithLink(reply.Content, scryfallButtonLabel, reply.LinkURL), nil
	}
	return Message(reply.Content), nil
}

//--> /hadit: el meme, efímero
func (r *Router) handleHadItCommand() *discordgo.InteractionResponse {
	return Ephemeral(hadItImageURL)
}

//--> /invite: link de OAuth para sumar el bot a otro server
func (r *Router) handleInviteCommand() *discordgo.InteractionResponse {
	url := fmt.Sprintf(
		"https://discord.com/oauth2/authorize?client_id=%s&scope=applications.commands",
		r.appID,
	)
	return Ephemeral(url)
}

//--> /newgame: publica el lobby con los botones Join/Start
func (r *Router) handleNewGameCommand() *discordgo.InteractionResponse {
	return MessageWithComponents("New Game Started", joinStartRow())
}
