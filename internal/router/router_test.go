package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mia-backend/internal/platform/logger"
	"mia-backend/internal/ports/completion"
	"mia-backend/internal/router"
)

type stubCompleter struct {
	reply string
	err   error
}

func (c *stubCompleter) Complete(ctx context.Context, msgs []completion.Message) (string, error) {
	return c.reply, c.err
}

func newTestServer(t *testing.T, c completion.Completer) *httptest.Server {
	t.Helper()
	return httptest.NewServer(router.NewRouter(router.Options{
		Completer: c,
		Logger:    logger.Nop(),
	}))
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/api/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	var resp struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Status != "healthy" || resp.Service != "MIA Backend" {
		t.Fatalf("unexpected health body=%s", string(body))
	}
}

func TestHTTP_Personalities(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/api/personalities", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	var resp struct {
		Personalities []struct {
			ID string `json:"id"`
		} `json:"personalities"`
	}
	_ = json.Unmarshal(body, &resp)
	if len(resp.Personalities) != 4 {
		t.Fatalf("expected 4 predefined personalities, got %d body=%s", len(resp.Personalities), string(body))
	}
	if resp.Personalities[0].ID != "cheerful" {
		t.Fatalf("expected cheerful first, got %s", resp.Personalities[0].ID)
	}
}

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{reply: "I'm doing great, thanks for asking!"})
	defer ts.Close()

	// 1) Crear mascota => stats iniciales 50/50/50 neutral
	petID := createPet(t, ts.URL, map[string]any{
		"user_id":          "user-1",
		"name":             "Luna",
		"personality_type": "predefined",
		"personality_id":   "cheerful",
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/api/stats/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get stats, got %d body=%s", st, string(body))
		}
		stats := decodeStats(t, body)
		if stats.Affection != 50 || stats.Hunger != 50 || stats.Energy != 50 || stats.Mood != "neutral" {
			t.Fatalf("unexpected initial stats body=%s", string(body))
		}
	}

	// 2) GET pet devuelve pet + stats
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pet/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			Pet struct {
				Name  string `json:"name"`
				Color string `json:"color"`
				Level int    `json:"level"`
			} `json:"pet"`
			Stats *struct {
				Affection int `json:"affection"`
			} `json:"stats"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Pet.Name != "Luna" || resp.Pet.Level != 1 || resp.Pet.Color != "#FFB6C1" {
			t.Fatalf("unexpected pet body=%s", string(body))
		}
		if resp.Stats == nil || resp.Stats.Affection != 50 {
			t.Fatalf("expected embedded stats, body=%s", string(body))
		}
	}

	// 3) Un turno de chat neutral => emotion neutral, delta aplicado
	{
		st, body := doReq(t, ts.URL, "POST", "/api/chat", map[string]any{
			"pet_id":  petID,
			"message": "Hi! How are you today?",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 chat, got %d body=%s", st, string(body))
		}
		var resp struct {
			Success        bool    `json:"success"`
			Response       string  `json:"response"`
			Emotion        string  `json:"emotion"`
			SentimentScore float64 `json:"sentiment_score"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Success || resp.Response != "I'm doing great, thanks for asking!" {
			t.Fatalf("unexpected chat response body=%s", string(body))
		}
		if resp.Emotion != "neutral" || resp.SentimentScore != 0 {
			t.Fatalf("expected neutral/0 sentiment, body=%s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/api/stats/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get stats, got %d", st)
		}
		stats := decodeStats(t, body)
		if stats.Affection != 55 || stats.Energy != 48 || stats.Mood != "neutral" {
			t.Fatalf("expected 55/48/neutral after chat, body=%s", string(body))
		}
	}

	// 4) Recién interactuada => activa
	{
		st, body := doReq(t, ts.URL, "GET", "/api/check-inactive/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 check-inactive, got %d", st)
		}
		var resp struct {
			Inactive bool `json:"inactive"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Inactive {
			t.Fatalf("fresh pet must not be inactive, body=%s", string(body))
		}
	}
}

func TestHTTP_ChatFallbackOnCompletionFailure(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{err: errors.New("timeout")})
	defer ts.Close()

	petID := createPet(t, ts.URL, map[string]any{
		"user_id":            "user-1",
		"name":               "Mochi",
		"personality_type":   "custom",
		"custom_personality": "a pirate cat",
	})

	st, body := doReq(t, ts.URL, "POST", "/api/chat", map[string]any{
		"pet_id":  petID,
		"message": "hello",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 despite completion failure, got %d body=%s", st, string(body))
	}

	var resp struct {
		Response string `json:"response"`
	}
	_ = json.Unmarshal(body, &resp)
	if !bytes.Contains([]byte(resp.Response), []byte("Mochi")) {
		t.Fatalf("fallback reply must name the pet, body=%s", string(body))
	}
}

func TestHTTP_ChatHistoryChronological(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{reply: "ok"})
	defer ts.Close()

	petID := createPet(t, ts.URL, map[string]any{
		"user_id":          "user-1",
		"name":             "Luna",
		"personality_type": "predefined",
		"personality_id":   "calm",
	})

	for _, msg := range []string{"first", "second", "third"} {
		st, body := doReq(t, ts.URL, "POST", "/api/chat", map[string]any{
			"pet_id":  petID,
			"message": msg,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 chat, got %d body=%s", st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/api/chat/history/"+petID+"?limit=2", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 history, got %d", st)
	}

	var resp struct {
		Chats []struct {
			UserMessage string `json:"user_message"`
		} `json:"chats"`
	}
	_ = json.Unmarshal(body, &resp)
	if len(resp.Chats) != 2 {
		t.Fatalf("expected 2 turns, got %d body=%s", len(resp.Chats), string(body))
	}
	// Los 2 más recientes, en orden cronológico.
	if resp.Chats[0].UserMessage != "second" || resp.Chats[1].UserMessage != "third" {
		t.Fatalf("expected chronological order, body=%s", string(body))
	}
}

func TestHTTP_ChatPetNotFound(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/api/chat", map[string]any{
		"pet_id":  "nope",
		"message": "hello",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 chat with unknown pet, got %d", st)
	}
}

func TestHTTP_CreatePetValidation(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/api/pet/create", map[string]any{
		"user_id":          "user-1",
		"name":             "Luna",
		"personality_type": "moody",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown personality type, got %d", st)
	}
}

func TestHTTP_StatsNotFound(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/api/stats/nope", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 stats of unknown pet, got %d", st)
	}
}

func TestHTTP_StatsUpdateClampsAndNoUpsert(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	petID := createPet(t, ts.URL, map[string]any{
		"user_id":          "user-1",
		"name":             "Luna",
		"personality_type": "predefined",
	})

	// Clamp de campos presentes
	{
		st, body := doReq(t, ts.URL, "POST", "/api/stats/update", map[string]any{
			"pet_id":    petID,
			"affection": 150,
			"energy":    -5,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats update, got %d body=%s", st, string(body))
		}
		stats := decodeUpdateStats(t, body)
		if stats == nil || stats.Affection != 100 || stats.Energy != 0 || stats.Hunger != 50 {
			t.Fatalf("expected clamped 100/0 hunger untouched, body=%s", string(body))
		}
	}

	// Sin fila de stats: no-op con stats null (sin upsert)
	{
		st, body := doReq(t, ts.URL, "POST", "/api/stats/update", map[string]any{
			"pet_id":    "ghost",
			"affection": 80,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 no-op update, got %d body=%s", st, string(body))
		}
		if stats := decodeUpdateStats(t, body); stats != nil {
			t.Fatalf("expected null stats for unknown pet, body=%s", string(body))
		}
	}
}

func TestHTTP_CheckInactiveUnknownPet(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/api/check-inactive/nope", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

type statsBody struct {
	Affection int    `json:"affection"`
	Hunger    int    `json:"hunger"`
	Energy    int    `json:"energy"`
	Mood      string `json:"mood"`
}

func decodeStats(t *testing.T, body []byte) statsBody {
	t.Helper()
	var resp struct {
		Stats statsBody `json:"stats"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode stats: %v body=%s", err, string(body))
	}
	return resp.Stats
}

func decodeUpdateStats(t *testing.T, body []byte) *statsBody {
	t.Helper()
	var resp struct {
		Success bool       `json:"success"`
		Stats   *statsBody `json:"stats"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode update stats: %v body=%s", err, string(body))
	}
	if !resp.Success {
		t.Fatalf("expected success=true, body=%s", string(body))
	}
	return resp.Stats
}

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/pet/create", payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		Success bool `json:"success"`
		Pet     struct {
			ID string `json:"id"`
		} `json:"pet"`
	}
	_ = json.Unmarshal(body, &resp)
	if !resp.Success || resp.Pet.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.Pet.ID
}

func doReq(t *testing.T, baseURL, method, path string, payload map[string]any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}
