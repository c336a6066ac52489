package scryfall

// --- Cards ---
type imageURIsDTO struct {
	Large  string `json:"large"`
	Normal string `json:"normal"`
	Small  string `json:"small"`
}

func (i *imageURIsDTO) best() string {
	if i == nil {
		return ""
	}
	switch {
	case i.Large != "":
		return i.Large
	case i.Normal != "":
		return i.Normal
	default:
		return i.Small
	}
}

type cardDTO struct {
	ScryfallURI     string        `json:"scryfall_uri"`
	PrintsSearchURI string        `json:"prints_search_uri"`
	ImageURIs       *imageURIsDTO `json:"image_uris"`
	CardFaces       []struct {
		ImageURIs *imageURIsDTO `json:"image_uris"`
	} `json:"card_faces"`
	Layout string `json:"layout"`
}

// --- Autocomplete ---
type autocompleteDTO struct {
	Data []string `json:"data"`
}

// --- Prints search ---
type printsDTO struct {
	Data []struct {
		Set             string        `json:"set"`
		CollectorNumber string        `json:"collector_number"`
		ImageURIs       *imageURIsDTO `json:"image_uris"`
		ScryfallURI     string        `json:"scryfall_uri"`
	} `json:"data"`
}
