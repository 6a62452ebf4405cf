package stats

import "context"

type Repository interface {
	Create(ctx context.Context, s Stats) error
	GetByPet(ctx context.Context, petID string) (Stats, error)
	// Update sobreescribe la fila existente; ErrNotFound si no hay fila.
	Update(ctx context.Context, s Stats) error
}
