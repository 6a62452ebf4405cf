package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/stats/{petID}", getStatsHandler(svc))
	r.Post("/stats/update", updateStatsHandler(svc))
}

// Response es la forma JSON de una fila de stats. Exportada porque el handler
// de pets la embebe en GET /pet/{id}.
type Response struct {
	PetID     string    `json:"pet_id"`
	Affection int       `json:"affection"`
	Hunger    int       `json:"hunger"`
	Energy    int       `json:"energy"`
	Mood      string    `json:"mood"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResponse(s Stats) Response {
	return Response{
		PetID:     s.PetID,
		Affection: s.Affection,
		Hunger:    s.Hunger,
		Energy:    s.Energy,
		Mood:      s.Mood,
		UpdatedAt: s.UpdatedAt,
	}
}

type getStatsResponse struct {
	Stats Response `json:"stats"`
}

type updateStatsRequest struct {
	PetID     string `json:"pet_id"`
	Affection *int   `json:"affection"`
	Hunger    *int   `json:"hunger"`
	Energy    *int   `json:"energy"`
}

type updateStatsResponse struct {
	Success bool      `json:"success"`
	Stats   *Response `json:"stats"` // null si la mascota no tenía fila
}

func getStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.GetByPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Stats not found")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, getStatsResponse{Stats: NewResponse(st)})
	}
}

func updateStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		st, err := svc.ApplyUpdate(r.Context(), UpdateInput{
			PetID:     req.PetID,
			Affection: req.Affection,
			Hunger:    req.Hunger,
			Energy:    req.Energy,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := updateStatsResponse{Success: true}
		if st != nil {
			sr := NewResponse(*st)
			resp.Stats = &sr
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// Duplicado a propósito por módulo, igual que en pets.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
