package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

const (
	// Color por defecto (rosa claro), igual que el frontend.
	DefaultColor = "#FFB6C1"

	// Umbral de inactividad para check-inactive.
	inactiveAfter = 24 * time.Hour
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

type CreateInput struct {
	UserID            string
	Name              string
	PersonalityType   string
	PersonalityID     string
	CustomPersonality string
	Color             string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	// Unión etiquetada: solo el payload de la variante elegida se conserva.
	var personality Personality
	switch PersonalityType(strings.TrimSpace(in.PersonalityType)) {
	case PersonalityPredefined:
		personality = Personality{
			Type:         PersonalityPredefined,
			PredefinedID: strings.TrimSpace(in.PersonalityID),
		}
	case PersonalityCustom:
		personality = Personality{
			Type:       PersonalityCustom,
			CustomText: strings.TrimSpace(in.CustomPersonality),
		}
	default:
		return Pet{}, ErrInvalidInput
	}

	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = DefaultColor
	}

	now := s.now()
	p := Pet{
		ID:              uuid.NewString(),
		OwnerUserID:     strings.TrimSpace(in.UserID),
		Name:            strings.TrimSpace(in.Name),
		Personality:     personality,
		Color:           color,
		Level:           1,
		CreatedAt:       now,
		LastInteraction: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// InactiveStatus es el resultado de check-inactive.
type InactiveStatus struct {
	Inactive bool
	Hours    int
	Message  string
}

// CheckInactive compara ahora contra la última interacción.
// Sin última interacción registrada => siempre activa.
func (s *Service) CheckInactive(ctx context.Context, id string) (InactiveStatus, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return InactiveStatus{}, err
	}

	if p.LastInteraction.IsZero() {
		return InactiveStatus{Inactive: false}, nil
	}

	elapsed := s.now().Sub(p.LastInteraction)
	if elapsed < inactiveAfter {
		return InactiveStatus{Inactive: false}, nil
	}

	return InactiveStatus{
		Inactive: true,
		Hours:    int(elapsed.Hours()),
		Message:  fmt.Sprintf("%s misses you! 🥺", p.Name),
	}, nil
}
