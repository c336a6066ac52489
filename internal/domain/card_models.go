package domain

// NamedCard es la vista normalizada de un lookup por nombre exacto.
type NamedCard struct {
	// ImageURL puede traer dos URLs separadas por espacio (cartas doble cara).
	ImageURL        string
	ScryfallURL     string
	PrintsSearchURL string
}

// SetRef identifica una impresión sin imagen (alcanza para autocomplete).
type SetRef struct {
	Set             string
	CollectorNumber string
}

// Printing es una impresión concreta de la carta en un set.
type Printing struct {
	Set             string
	CollectorNumber string
	ImageURL        string
	ScryfallURL     string
}

// PrintList mantiene las dos vistas de la misma lista: autocomplete solo
// necesita los set codes, el render necesita las imágenes.
type PrintList struct {
	Sets  []SetRef
	Cards []Printing
}

// Player es una entrada de la sesión de juego (vida por jugador).
type Player struct {
	ID   string `json:"id"`
	Life int    `json:"life"`
}
