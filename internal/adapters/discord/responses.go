package discord

import "github.com/bwmarrin/discordgo"

// Builders de envelopes. Cada respuesta se construye fresca, nunca se muta
// después de armada.

func Pong() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
}

func Message(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}
}

func Ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

// MessageWithLink: mensaje con un único botón de link (estilo Scryfall).
func MessageWithLink(content, label, url string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Style: discordgo.LinkButton,
							Label: label,
							URL:   url,
						},
					},
				},
			},
		},
	}
}

// UpdateMessage reemplaza el contenido y los componentes del mensaje
// clickeado (los handlers de botones viven de esto).
func UpdateMessage(content string, components []discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	}
}

func MessageWithComponents(content string, components []discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	}
}

func AutocompleteResult(choices []*discordgo.ApplicationCommandOptionChoice) *discordgo.InteractionResponse {
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}
}

// joinStartRow: botones del lobby (Join/Start).
func joinStartRow() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Style:    discordgo.PrimaryButton,
					Label:    "Join Game",
					CustomID: customIDJoinGame,
				},
				discordgo.Button{
					Style:    discordgo.SecondaryButton,
					Label:    "Start Game",
					CustomID: customIDStartGame,
				},
			},
		},
	}
}

// lifeRow: los cuatro botones de ajuste de vida.
func lifeRow() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Style:    discordgo.DangerButton,
					Label:    "-10",
					CustomID: customIDSub10,
				},
				discordgo.Button{
					Style:    discordgo.DangerButton,
					Label:    "-1",
					CustomID: customIDSub1,
				},
				discordgo.Button{
					Style:    discordgo.SuccessButton,
					Label:    "+1",
					CustomID: customIDAdd1,
				},
				discordgo.Button{
					Style:    discordgo.SuccessButton,
					Label:    "+10",
					CustomID: customIDAdd10,
				},
			},
		},
	}
}
