package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// handleAutocomplete rutea por el nombre de la opción enfocada. Sin opción
// enfocada no hay nada que sugerir → not-found.
func (r *Router) handleAutocomplete(ctx context.Context, ic *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	data := ic.ApplicationCommandData()

	focused, ok := focusedOpt(data.Options)
	if !ok {
		return nil, ErrUnknownCommand
	}

	switch focused.Name {
	case "name":
		names := r.card.SuggestNames(ctx, focused.StringValue())
		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
		for _, n := range names {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  n,
				Value: n,
			})
		}
		return AutocompleteResult(choices), nil

	case "set":
		// el filtro corre sobre las impresiones del "name" actual
		name, _ := optStr(data.Options, "name")
		refs := r.card.SuggestSets(ctx, name, focused.StringValue())
		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(refs))
		for _, ref := range refs {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  fmt.Sprintf("%s (%s)", strings.ToUpper(ref.Set), ref.CollectorNumber),
				Value: ref.Set,
			})
		}
		return AutocompleteResult(choices), nil
	}
	return nil, ErrUnknownCommand
}
