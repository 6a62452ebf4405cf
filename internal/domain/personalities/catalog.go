package personalities

// Personality es una entrada del catálogo estático de personalidades predefinidas.
// El catálogo se define en compile-time y nunca se persiste.
type Personality struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

var catalog = []Personality{
	{ID: "cheerful", Name: "Cheerful", Description: "Always happy and optimistic, loves to spread joy!", Emoji: "😊"},
	{ID: "shy", Name: "Shy", Description: "A bit timid but very sweet and caring.", Emoji: "😌"},
	{ID: "adventurous", Name: "Adventurous", Description: "Bold and curious, always ready for new experiences!", Emoji: "🌟"},
	{ID: "calm", Name: "Calm", Description: "Peaceful and wise, brings tranquility to your day.", Emoji: "🧘"},
}

// Catalog devuelve una copia del catálogo (los callers no pueden mutar el original).
func Catalog() []Personality {
	out := make([]Personality, len(catalog))
	copy(out, catalog)
	return out
}

// Find busca por id. Un id desconocido no es error: el caller decide qué hacer.
func Find(id string) (Personality, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Personality{}, false
}
