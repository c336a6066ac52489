package discord

import "github.com/bwmarrin/discordgo"

// Commands es la tabla estática que se registra out-of-band (cmd/register).
// El router resuelve las opciones por nombre, nunca por posición.
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "card",
		Description: "Search for a card image.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "The name of the card",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "set",
				Description:  "The set of the card",
				Required:     false,
				Autocomplete: true,
			},
		},
	},
	{
		Name:        "hadit",
		Description: "When you've just about had it.",
	},
	{
		Name:        "invite",
		Description: "Get an invite link to add the bot to your server",
	},
	{
		Name:        "newgame",
		Description: "Start a new game",
	},
}
