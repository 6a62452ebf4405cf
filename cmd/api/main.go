package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	openaiadapter "mia-backend/internal/adapters/completion/openai"
	"mia-backend/internal/platform/logger"
	"mia-backend/internal/ports/completion"
	"mia-backend/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional (dev); en deploy las vars vienen del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8001"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var completer completion.Completer
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			model = "gpt-4o-mini"
		}
		timeout := 30 * time.Second
		if v := os.Getenv("OPENAI_TIMEOUT_SECONDS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				timeout = time.Duration(n) * time.Second
			}
		}
		completer = openaiadapter.New(key, model, timeout)
		log.Info("completion service enabled", map[string]any{"model": model})
	} else {
		log.Warn("OPENAI_API_KEY not set, chat will use fallback replies", nil)
	}

	r := router.NewRouter(router.Options{
		Completer: completer,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 45 * time.Second, // la completion puede tardar
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
