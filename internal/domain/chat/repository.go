package chat

import "context"

type Repository interface {
	Create(ctx context.Context, t Turn) error
	// ListRecent devuelve hasta limit turnos, del más nuevo al más viejo.
	ListRecent(ctx context.Context, petID string, limit int) ([]Turn, error)
}
