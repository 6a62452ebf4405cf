package postgres

import (
	"context"
	"database/sql"
	"strings"

	"mia-backend/internal/domain/stats"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) Create(ctx context.Context, s stats.Stats) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stats (
			pet_id, affection, hunger, energy, mood, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		s.PetID,
		s.Affection,
		s.Hunger,
		s.Energy,
		s.Mood,
		s.UpdatedAt,
	)
	return err
}

func (r *StatsRepo) GetByPet(ctx context.Context, petID string) (stats.Stats, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return stats.Stats{}, stats.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT pet_id, affection, hunger, energy, mood, updated_at
		FROM stats
		WHERE pet_id = $1
	`, petID)

	var s stats.Stats
	if err := row.Scan(
		&s.PetID,
		&s.Affection,
		&s.Hunger,
		&s.Energy,
		&s.Mood,
		&s.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return stats.Stats{}, stats.ErrNotFound
		}
		return stats.Stats{}, err
	}

	return s, nil
}

func (r *StatsRepo) Update(ctx context.Context, s stats.Stats) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE stats
		SET affection = $2, hunger = $3, energy = $4, mood = $5, updated_at = $6
		WHERE pet_id = $1
	`,
		s.PetID,
		s.Affection,
		s.Hunger,
		s.Energy,
		s.Mood,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return stats.ErrNotFound
	}
	return nil
}
