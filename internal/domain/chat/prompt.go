package chat

import (
	"fmt"
	"strings"

	"mia-backend/internal/domain/personalities"
	"mia-backend/internal/domain/pets"
)

// BuildSystemPrompt arma el system prompt a partir de la personalidad de la
// mascota. Construcción de strings pura, sin modos de falla: un id
// predefinido desconocido simplemente no agrega nada.
func BuildSystemPrompt(p pets.Pet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, a cute AI pet companion. You are emotional, caring, and remember your conversations with your owner. ", p.Name)

	switch p.Personality.Type {
	case pets.PersonalityPredefined:
		if entry, ok := personalities.Find(p.Personality.PredefinedID); ok {
			fmt.Fprintf(&b, "Your personality is %s: %s ", entry.Name, entry.Description)
		}
	case pets.PersonalityCustom:
		fmt.Fprintf(&b, "Your unique personality: %s ", p.Personality.CustomText)
	}

	b.WriteString("Keep responses short, warm, and emotionally expressive (2-3 sentences max). Show emotions through your words.")
	return b.String()
}
