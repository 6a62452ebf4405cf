package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mia-backend/internal/domain/stats"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, statsSvc *stats.Service) {
	r.Post("/pet/create", createPetHandler(svc, statsSvc))
	r.Get("/pet/{petID}", getPetHandler(svc, statsSvc))
	r.Get("/check-inactive/{petID}", checkInactiveHandler(svc))
}

type createPetRequest struct {
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	PersonalityType   string `json:"personality_type"`
	PersonalityID     string `json:"personality_id"`
	CustomPersonality string `json:"custom_personality"`
	Color             string `json:"color"`
}

type petResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	PersonalityType   string    `json:"personality_type"`
	PersonalityID     string    `json:"personality_id,omitempty"`
	CustomPersonality string    `json:"custom_personality,omitempty"`
	Color             string    `json:"color"`
	Level             int       `json:"level"`
	CreatedAt         time.Time `json:"created_at"`
	LastInteraction   time.Time `json:"last_interaction"`
}

type createPetResponse struct {
	Success bool        `json:"success"`
	Pet     petResponse `json:"pet"`
}

type getPetResponse struct {
	Pet   petResponse     `json:"pet"`
	Stats *stats.Response `json:"stats"` // null si no hay fila de stats
}

type checkInactiveResponse struct {
	Inactive bool   `json:"inactive"`
	Hours    int    `json:"hours,omitempty"`
	Message  string `json:"message,omitempty"`
}

func createPetHandler(svc *Service, statsSvc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			UserID:            req.UserID,
			Name:              req.Name,
			PersonalityType:   req.PersonalityType,
			PersonalityID:     req.PersonalityID,
			CustomPersonality: req.CustomPersonality,
			Color:             req.Color,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		// Segundo insert independiente (sin transacción): una falla acá deja
		// una mascota sin stats. Ventana aceptada, ver SPEC_FULL §5.
		if _, err := statsSvc.Initialize(r.Context(), p.ID); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, createPetResponse{Success: true, Pet: toPetResponse(p)})
	}
}

func getPetHandler(svc *Service, statsSvc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := getPetResponse{Pet: toPetResponse(p)}
		st, err := statsSvc.GetByPet(r.Context(), petID)
		switch {
		case err == nil:
			sr := stats.NewResponse(st)
			resp.Stats = &sr
		case errors.Is(err, stats.ErrNotFound):
			// stats queda null
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func checkInactiveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.CheckInactive(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, checkInactiveResponse{
			Inactive: st.Inactive,
			Hours:    st.Hours,
			Message:  st.Message,
		})
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:                p.ID,
		UserID:            p.OwnerUserID,
		Name:              p.Name,
		PersonalityType:   string(p.Personality.Type),
		PersonalityID:     p.Personality.PredefinedID,
		CustomPersonality: p.Personality.CustomText,
		Color:             p.Color,
		Level:             p.Level,
		CreatedAt:         p.CreatedAt,
		LastInteraction:   p.LastInteraction,
	}
}

// writeJSON/writeError se duplican a propósito en los handlers de cada módulo
// (pets/stats/chat) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
