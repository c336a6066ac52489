package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/spelltable-bot/internal/app/service"
	"github.com/jose-valero/spelltable-bot/internal/domain"
)

const testAppID = "app-123"

type fakeScryfall struct {
	randomURL string
	named     *domain.NamedCard
	names     []string
	prints    *domain.PrintList
	calls     int
}

func (f *fakeScryfall) RandomCard(context.Context) (string, error) {
	f.calls++
	return f.randomURL, nil
}
func (f *fakeScryfall) NamedCard(context.Context, string) (*domain.NamedCard, error) {
	f.calls++
	return f.named, nil
}
func (f *fakeScryfall) AutocompleteNames(context.Context, string) ([]string, error) {
	f.calls++
	return f.names, nil
}
func (f *fakeScryfall) Printings(context.Context, string) (*domain.PrintList, error) {
	f.calls++
	return f.prints, nil
}

func newTestRouter(scry *fakeScryfall) *Router {
	card := service.NewCardService(scry, nil, nil)
	game := service.NewGameService(nil)
	return NewRouter(testAppID, card, game)
}

func member(id string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: id}}
}

// --- dispatch por type ---

func TestRoutePing(t *testing.T) {
	scry := &fakeScryfall{}
	r := newTestRouter(scry)

	resp, err := r.Route(context.Background(), &discordgo.Interaction{
		Type: discordgo.InteractionPing,
	})
	require.NoError(t, err)
	assert.Equal(t, discordgo.InteractionResponsePong, resp.Type)
	// el handshake no puede tocar el upstream
	assert.Zero(t, scry.calls)
}

func TestRouteUnknownInteractionType(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	_, err := r.Route(context.Background(), &discordgo.Interaction{
		Type: discordgo.InteractionModalSubmit,
		Data: discordgo.ModalSubmitInteractionData{},
	})
	assert.ErrorIs(t, err, ErrUnknownInteraction)
}

func TestRouteUnknownCommand(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	_, err := r.Route(context.Background(), &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: member("111"),
		Data:   discordgo.ApplicationCommandInteractionData{Name: "bogus"},
	})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

// --- comandos ---

func TestRouteCardCommandByName(t *testing.T) {
	scry := &fakeScryfall{named: &domain.NamedCard{
		ImageURL:    "https://img/lotus.jpg",
		ScryfallURL: "https://scryfall.com/lotus",
	}}
	r := newTestRouter(scry)

	resp, err := r.Route(context.Background(), &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: member("111"),
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "CARD", // el match es case-insensitive
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "Black Lotus"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	assert.Equal(t, "https://img/lotus.jpg", resp.Data.Content)

	// un solo botón de link a Scryfall
	require.Len(t, resp.Data.Components, 1)
	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)
	btn, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, discordgo.LinkButton, btn.Style)
	assert.Equal(t, "View on Scryfall", btn.Label)
	assert.Equal(t, "https://scryfall.com/lotus", btn.URL)
}

func TestRouteCardCommandRandomHasNoButton(t *testing.T) {
	scry := &fakeScryfall{randomURL: "https://img/random.jpg"}
	r := newTestRouter(scry)

	resp, err := r.Route(context.Background(), &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: member("111"),
		Data:   discordgo.ApplicationCommandInteractionData{Name: "card"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img/random.jpg", resp.Data.Content)
	assert.Empty(t, resp.Data.Components)
}

func TestRouteHadItCommand(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	resp, err := r.Route(context.Background(), &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: member("111"),
		Data:   discordgo.ApplicationCommandInteractionData{Name: "hadit"},
	})
	require.NoError(t, err)
	assert.Equal(t, hadItImageURL, resp.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestRouteInviteCommand(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	resp, err := r.Route(context.Background(), &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: member("111"),
		Data:   discordgo.ApplicationCommandInteractionData{Name: "invite"},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Data.Content, "client_id="+testAppID)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestRouteNewGameCommand(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	resp, err := r.Route(context.Background(), &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: member("111"),
		Data:   discordgo.ApplicationCommandInteractionData{Name: "newgame"},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Game Started", resp.Data.Content)

	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)
	assert.Equal(t, customIDJoinGame, row.Components[0].(discordgo.Button).CustomID)
	assert.Equal(t, customIDStartGame, row.Components[1].(discordgo.Button).CustomID)
}

// --- componentes ---

func componentClick(customID, content, userID string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type:    discordgo.InteractionMessageComponent,
		Member:  member(userID),
		Message: &discordgo.Message{ID: "msg-1", Content: content},
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID},
	}
}

func TestRouteJoinGameClick(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	resp, err := r.Route(context.Background(), componentClick(customIDJoinGame, "New Game Started", "555"))
	require.NoError(t, err)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Equal(t, "New Game Started\n<@555> has joined the game", resp.Data.Content)

	// el lobby mantiene los mismos dos botones
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)
}

func TestRouteStartGameClick(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	content := "New Game Started\n<@111> has joined the game\n<@222> has joined the game"
	resp, err := r.Route(context.Background(), componentClick(customIDStartGame, content, "111"))
	require.NoError(t, err)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Equal(t, "<@111> : 40\n<@222> : 40", resp.Data.Content)

	row := resp.Data.Components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 4)
	labels := []string{}
	for _, c := range row.Components {
		labels = append(labels, c.(discordgo.Button).Label)
	}
	assert.Equal(t, []string{"-10", "-1", "+1", "+10"}, labels)
}

func TestRouteLifeAdjustClick(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	resp, err := r.Route(context.Background(), componentClick(customIDSub10, "<@111> : 40\n<@222> : 40", "111"))
	require.NoError(t, err)
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Equal(t, "<@111> : 30\n<@222> : 40", resp.Data.Content)
}

func TestRouteUnknownComponent(t *testing.T) {
	r := newTestRouter(&fakeScryfall{})

	_, err := r.Route(context.Background(), componentClick("bogus_button", "", "111"))
	assert.ErrorIs(t, err, ErrUnknownComponent)
}
