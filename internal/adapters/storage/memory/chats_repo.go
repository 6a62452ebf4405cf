package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"mia-backend/internal/domain/chat"
)

type chatsRepo struct {
	mu    sync.RWMutex
	byPet map[string][]chat.Turn
}

func NewChatsRepo() chat.Repository {
	return &chatsRepo{
		byPet: make(map[string][]chat.Turn),
	}
}

func (r *chatsRepo) Create(ctx context.Context, t chat.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("turn id required")
	}
	r.byPet[t.PetID] = append(r.byPet[t.PetID], t)
	return nil
}

func (r *chatsRepo) ListRecent(ctx context.Context, petID string, limit int) ([]chat.Turn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	turns := r.byPet[petID]

	// Newest-first, mismo contrato que el adapter de postgres. Se parte
	// del orden de inserción invertido para que timestamps iguales
	// (frecuentes en tests) queden igual del más nuevo al más viejo.
	out := make([]chat.Turn, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		out = append(out, turns[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
