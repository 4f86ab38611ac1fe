package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"dedup-service/internal/config"
	dupHnd "dedup-service/internal/dedup/handler"
	"dedup-service/internal/dedup/service"
	"dedup-service/internal/middleware"
	"dedup-service/server/http/handlers"
)

func NewRouter(cfg config.Config, engine *service.Engine, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// проверка дублей перед загрузкой
	r.Post("/projects/{projectID}/duplicates", dupHnd.CheckDuplicates(cfg, engine, logger))

	return r
}
