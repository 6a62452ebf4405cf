package chat

import "time"

// Turn es un intercambio usuario/respuesta. Inmutable una vez creado;
// el historial es un log append-only ordenado por timestamp.
type Turn struct {
	ID    string
	PetID string

	UserMessage string
	Reply       string

	Sentiment float64
	Emotion   string

	Timestamp time.Time
}
