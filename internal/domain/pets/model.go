package pets

import "time"

// PersonalityType discrimina la unión Personality.
// @Enum predefined, custom
type PersonalityType string

const (
	PersonalityPredefined PersonalityType = "predefined"
	PersonalityCustom     PersonalityType = "custom"
)

// Personality es una unión etiquetada de dos variantes:
// - predefined: PredefinedID referencia el catálogo estático
// - custom: CustomText es la descripción libre del dueño
// Exactamente un payload es significativo según Type (lo valida el service).
type Personality struct {
	Type         PersonalityType
	PredefinedID string
	CustomText   string
}

// Pet representa la mascota virtual de un usuario.
type Pet struct {
	ID          string
	OwnerUserID string

	Name        string
	Personality Personality
	Color       string
	Level       int

	CreatedAt       time.Time
	LastInteraction time.Time
}
