package discord

import "github.com/bwmarrin/discordgo"

// optStr busca una opción string por nombre (nada de índices posicionales).
func optStr(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	for _, o := range opts {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
	}
	return "", false
}

// focusedOpt: la opción que el usuario está tipeando. Se espera exactamente
// una; si no hay, el caller lo trata como not-found.
func focusedOpt(opts []*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, o := range opts {
		if o.Focused {
			return o, true
		}
	}
	return nil, false
}

// userID saca el id del autor: Member en guilds, User en DMs.
func userID(ic *discordgo.Interaction) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}

func messageContent(ic *discordgo.Interaction) string {
	if ic.Message == nil {
		return ""
	}
	return ic.Message.Content
}
