package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mia-backend/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/chat", sendHandler(svc))
	r.Get("/chat/history/{petID}", historyHandler(svc))
}

type chatRequest struct {
	PetID   string `json:"pet_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Success        bool    `json:"success"`
	Response       string  `json:"response"`
	Emotion        string  `json:"emotion"`
	SentimentScore float64 `json:"sentiment_score"`
}

type turnResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Sentiment   float64   `json:"user_sentiment"`
	Emotion     string    `json:"emotion"`
	Timestamp   time.Time `json:"timestamp"`
}

type historyResponse struct {
	Chats []turnResponse `json:"chats"`
}

func sendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.Send(r.Context(), req.PetID, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, pets.ErrNotFound):
				writeError(w, http.StatusNotFound, "Pet not found")
			default:
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, chatResponse{
			Success:        true,
			Response:       res.Reply,
			Emotion:        res.Emotion,
			SentimentScore: res.Sentiment,
		})
	}
}

func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = n
		}

		turns, err := svc.History(r.Context(), chi.URLParam(r, "petID"), limit)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]turnResponse, 0, len(turns))
		for _, t := range turns {
			out = append(out, turnResponse{
				ID:          t.ID,
				PetID:       t.PetID,
				UserMessage: t.UserMessage,
				AIResponse:  t.Reply,
				Sentiment:   t.Sentiment,
				Emotion:     t.Emotion,
				Timestamp:   t.Timestamp,
			})
		}

		writeJSON(w, http.StatusOK, historyResponse{Chats: out})
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
