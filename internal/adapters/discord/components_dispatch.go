package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
)

const (
	customIDJoinGame  = "join_game"
	customIDStartGame = "start_game"
	customIDSub10     = "sub_10"
	customIDSub1      = "sub_1"
	customIDAdd1      = "add_1"
	customIDAdd10     = "add_10"
)

func (r *Router) handleComponent(ctx context.Context, ic *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	data := ic.MessageComponentData()
	log.Printf("component: %s by=%s guild=%s", data.CustomID, userID(ic), ic.GuildID)

	messageID := ""
	if ic.Message != nil {
		messageID = ic.Message.ID
	}

	switch data.CustomID {

	case customIDJoinGame:
		content := r.game.Join(messageContent(ic), userID(ic))
		return UpdateMessage(content, joinStartRow()), nil

	case customIDStartGame:
		content := r.game.Start(ctx, messageID, ic.ChannelID, messageContent(ic))
		return UpdateMessage(content, lifeRow()), nil

	case customIDSub10:
		return r.adjustLife(ctx, ic, messageID, -10), nil
	case customIDSub1:
		return r.adjustLife(ctx, ic, messageID, -1), nil
	case customIDAdd1:
		return r.adjustLife(ctx, ic, messageID, +1), nil
	case customIDAdd10:
		return r.adjustLife(ctx, ic, messageID, +10), nil
	}
	return nil, ErrUnknownComponent
}

func (r *Router) adjustLife(ctx context.Context, ic *discordgo.Interaction, messageID string, delta int) *discordgo.InteractionResponse {
	content := r.game.Adjust(ctx, messageID, messageContent(ic), userID(ic), delta)
	return UpdateMessage(content, lifeRow())
}
