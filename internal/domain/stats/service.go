package stats

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("stats not found")
)

const (
	chatAffectionDelta = 5
	chatEnergyDelta    = -2
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Initialize crea la fila 50/50/50 "neutral" para una mascota recién creada.
func (s *Service) Initialize(ctx context.Context, petID string) (Stats, error) {
	if strings.TrimSpace(petID) == "" {
		return Stats{}, ErrInvalidInput
	}

	st := Default(petID, s.now())
	if err := s.repo.Create(ctx, st); err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (s *Service) GetByPet(ctx context.Context, petID string) (Stats, error) {
	if strings.TrimSpace(petID) == "" {
		return Stats{}, ErrNotFound
	}
	return s.repo.GetByPet(ctx, petID)
}

// ApplyChatDelta ajusta stats tras un turno de chat: +5 afecto (techo 100),
// -2 energía (piso 0), mood = emoción recién calculada. Hunger no se toca.
// Si la mascota no tiene fila de stats, no se fabrica una: skip silencioso.
func (s *Service) ApplyChatDelta(ctx context.Context, petID, mood string) error {
	st, err := s.repo.GetByPet(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	st.Affection = Clamp(st.Affection + chatAffectionDelta)
	st.Energy = Clamp(st.Energy + chatEnergyDelta)
	st.Mood = mood
	st.UpdatedAt = s.now()

	return s.repo.Update(ctx, st)
}

// UpdateInput lleva los campos del update explícito; nil = no tocar.
type UpdateInput struct {
	PetID     string
	Affection *int
	Hunger    *int
	Energy    *int
}

// ApplyUpdate sobreescribe (con clamp) cada campo presente y refresca el
// timestamp. Contra una mascota sin fila de stats el write es un no-op y se
// devuelve (nil, nil) — decisión registrada en DESIGN.md, no hay upsert.
func (s *Service) ApplyUpdate(ctx context.Context, in UpdateInput) (*Stats, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return nil, ErrInvalidInput
	}

	st, err := s.repo.GetByPet(ctx, in.PetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if in.Affection != nil {
		st.Affection = Clamp(*in.Affection)
	}
	if in.Hunger != nil {
		st.Hunger = Clamp(*in.Hunger)
	}
	if in.Energy != nil {
		st.Energy = Clamp(*in.Energy)
	}
	st.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return &st, nil
}
