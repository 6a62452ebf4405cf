package completion

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message es un mensaje role-tagged de la secuencia que consume el servicio
// de completions.
type Message struct {
	Role    Role
	Content string
}

// Completer es el puerto hacia el servicio externo de generación de texto.
// Cualquier error del lado del caller se resuelve con el fallback del
// orquestador de chat; acá solo se propaga.
type Completer interface {
	Complete(ctx context.Context, msgs []Message) (string, error)
}
