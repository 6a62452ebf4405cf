package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mia-backend/internal/domain/pets"
	"mia-backend/internal/domain/stats"
	"mia-backend/internal/platform/logger"
	"mia-backend/internal/ports/completion"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	// Cuántos turnos previos entran al contexto del modelo.
	historyContextSize = 10

	// Límite por defecto del endpoint de historial.
	DefaultHistoryLimit = 20
)

// Service es el orquestador de conversación: carga mascota e historial,
// arma el contexto, llama al servicio de completions (con fallback
// determinístico), persiste el turno y actualiza stats.
type Service struct {
	petsRepo  pets.Repository
	repo      Repository
	statsSvc  *stats.Service
	completer completion.Completer // nil => siempre fallback
	log       logger.Logger
	now       func() time.Time
}

func NewService(
	petsRepo pets.Repository,
	repo Repository,
	statsSvc *stats.Service,
	completer completion.Completer,
	log logger.Logger,
) *Service {
	return &Service{
		petsRepo:  petsRepo,
		repo:      repo,
		statsSvc:  statsSvc,
		completer: completer,
		log:       log,
		now:       time.Now,
	}
}

// SendResult es lo que devuelve un turno de chat.
type SendResult struct {
	Reply     string
	Emotion   string
	Sentiment float64
}

// Send procesa un turno de chat completo (pasada única, sin retries).
func (s *Service) Send(ctx context.Context, petID, message string) (SendResult, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(message) == "" {
		return SendResult{}, ErrInvalidInput
	}

	pet, err := s.petsRepo.GetByID(ctx, petID)
	if err != nil {
		return SendResult{}, err
	}

	recent, err := s.repo.ListRecent(ctx, petID, historyContextSize)
	if err != nil {
		return SendResult{}, err
	}

	// El repo devuelve newest-first; el contexto va en orden cronológico.
	msgs := make([]completion.Message, 0, 2*len(recent)+2)
	msgs = append(msgs, completion.Message{Role: completion.RoleSystem, Content: BuildSystemPrompt(pet)})
	for i := len(recent) - 1; i >= 0; i-- {
		msgs = append(msgs,
			completion.Message{Role: completion.RoleUser, Content: recent[i].UserMessage},
			completion.Message{Role: completion.RoleAssistant, Content: recent[i].Reply},
		)
	}
	msgs = append(msgs, completion.Message{Role: completion.RoleUser, Content: message})

	// Cualquier falla del servicio externo cae al fallback; el turno
	// nunca se aborta por esto.
	reply := fallbackReply(pet.Name)
	if s.completer != nil {
		out, err := s.completer.Complete(ctx, msgs)
		if err != nil {
			s.log.Warn("completion failed, using fallback", map[string]any{
				"pet_id": petID,
				"error":  err.Error(),
			})
		} else if trimmed := strings.TrimSpace(out); trimmed != "" {
			reply = trimmed
		}
	}

	// El sentimiento sale del mensaje del usuario, no de la respuesta,
	// e independiente del resultado de la completion.
	score := Score(message)
	emotion := EmotionFor(score)

	now := s.now()
	turn := Turn{
		ID:          uuid.NewString(),
		PetID:       petID,
		UserMessage: message,
		Reply:       reply,
		Sentiment:   score,
		Emotion:     emotion,
		Timestamp:   now,
	}
	if err := s.repo.Create(ctx, turn); err != nil {
		return SendResult{}, err
	}

	if err := s.petsRepo.TouchLastInteraction(ctx, petID, now); err != nil {
		return SendResult{}, err
	}

	// Sin fila de stats no se fabrica una; el delta se saltea adentro.
	if err := s.statsSvc.ApplyChatDelta(ctx, petID, emotion); err != nil {
		return SendResult{}, err
	}

	return SendResult{Reply: reply, Emotion: emotion, Sentiment: score}, nil
}

// History devuelve hasta limit turnos en orden cronológico (oldest-first),
// aunque el storage los recupere newest-first.
func (s *Service) History(ctx context.Context, petID string, limit int) ([]Turn, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	recent, err := s.repo.ListRecent(ctx, petID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]Turn, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		out = append(out, recent[i])
	}
	return out, nil
}

func fallbackReply(name string) string {
	return fmt.Sprintf("%s says: I'm a little sleepy and lost my words, but I'm so happy you're here!", name)
}
