package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"mia-backend/internal/domain/stats"
)

type statsRepo struct {
	mu    sync.RWMutex
	byPet map[string]stats.Stats
}

func NewStatsRepo() stats.Repository {
	return &statsRepo{
		byPet: make(map[string]stats.Stats),
	}
}

func (r *statsRepo) Create(ctx context.Context, s stats.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.PetID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byPet[s.PetID]; exists {
		return errors.New("stats already exist")
	}
	r.byPet[s.PetID] = s
	return nil
}

func (r *statsRepo) GetByPet(ctx context.Context, petID string) (stats.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byPet[petID]
	if !ok {
		return stats.Stats{}, stats.ErrNotFound
	}
	return s, nil
}

func (r *statsRepo) Update(ctx context.Context, s stats.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPet[s.PetID]; !exists {
		return stats.ErrNotFound
	}
	r.byPet[s.PetID] = s
	return nil
}
