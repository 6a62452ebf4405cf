package stats

import "time"

// MoodNeutral es el mood inicial de toda mascota.
const MoodNeutral = "neutral"

// Stats son los atributos de bienestar de una mascota, una fila por pet_id.
// Affection/Hunger/Energy viven siempre en [0,100].
type Stats struct {
	PetID string

	Affection int
	Hunger    int
	Energy    int
	Mood      string

	UpdatedAt time.Time
}

// Clamp acota un valor al rango [0,100].
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Default es la fila inicial que se crea junto con la mascota.
func Default(petID string, at time.Time) Stats {
	return Stats{
		PetID:     petID,
		Affection: 50,
		Hunger:    50,
		Energy:    50,
		Mood:      MoodNeutral,
		UpdatedAt: at,
	}
}
