package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"mia-backend/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id,
			name, personality_type, personality_id, custom_personality,
			color, level,
			created_at, last_interaction
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		string(p.Personality.Type),
		p.Personality.PredefinedID,
		p.Personality.CustomText,
		p.Color,
		p.Level,
		p.CreatedAt,
		p.LastInteraction,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, personality_type, personality_id, custom_personality,
			color, level,
			created_at, last_interaction
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	var ptype string
	var last sql.NullTime
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&ptype,
		&p.Personality.PredefinedID,
		&p.Personality.CustomText,
		&p.Color,
		&p.Level,
		&p.CreatedAt,
		&last,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Personality.Type = pets.PersonalityType(ptype)
	if last.Valid {
		p.LastInteraction = last.Time
	}

	return p, nil
}

func (r *PetsRepo) TouchLastInteraction(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET last_interaction = $2
		WHERE id = $1
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}
