package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	mem "mia-backend/internal/adapters/storage/memory"
	pg "mia-backend/internal/adapters/storage/postgres"
	"mia-backend/internal/domain/chat"
	"mia-backend/internal/domain/personalities"
	"mia-backend/internal/domain/pets"
	"mia-backend/internal/domain/stats"
	"mia-backend/internal/middleware"
	"mia-backend/internal/platform/logger"
	"mia-backend/internal/ports/completion"

	_ "mia-backend/docs" // swagger docs

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: nil => el chat responde siempre con el fallback.
	Completer completion.Completer

	// Opcional: nil => logger desde env.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// Mismo CORS abierto que consume el frontend móvil.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Use(middleware.RequestLogger(log))

	var (
		petsRepo  pets.Repository
		statsRepo stats.Repository
		chatsRepo chat.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		petsRepo = pg.NewPetsRepo(db)
		statsRepo = pg.NewStatsRepo(db)
		chatsRepo = pg.NewChatsRepo(db)
	} else {
		petsRepo = mem.NewPetsRepo()
		statsRepo = mem.NewStatsRepo()
		chatsRepo = mem.NewChatsRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petsRepo)
	statsSvc := stats.NewService(statsRepo)
	chatSvc := chat.NewService(petsRepo, chatsRepo, statsSvc, opts.Completer, log)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler())

		personalities.RegisterRoutes(api)
		pets.RegisterRoutes(api, petsSvc, statsSvc)
		stats.RegisterRoutes(api, statsSvc)
		chat.RegisterRoutes(api, chatSvc)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "MIA Backend",
		})
	}
}
