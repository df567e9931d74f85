package router

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "medication-tracker/internal/adapters/storage/memory"
	pg "medication-tracker/internal/adapters/storage/postgres"
	"medication-tracker/internal/domain/intake"
	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/segments"
	"medication-tracker/internal/domain/settings"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/storage"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si no viene se crea desde env.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	var store storage.Store
	if opts.DB != nil {
		store = pg.NewKVStore(opts.DB)
	} else {
		store = mem.NewKVStore()
	}

	// Services por módulo. El registry cascadea removes al tracker.
	tracker := intake.NewTracker(store, log)
	medsSvc := medications.NewService(store, tracker, log)
	settingsSvc := settings.NewService(store, log)

	// Carga secuencial antes de servir: medicamentos, luego tomas de hoy
	// (acá ocurre el chequeo de rollover), luego ajustes. Ninguna
	// operación asume datos presentes antes de este punto.
	ctx := context.Background()
	medsSvc.Load(ctx)
	tracker.Load(ctx)
	settingsSvc.Load(ctx)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/ready", readyHandler(medsSvc, tracker, settingsSvc))

	// Rutas por módulo
	segments.RegisterRoutes(r)
	medications.RegisterRoutes(r, medsSvc)
	intake.RegisterRoutes(r, tracker, medsSvc)
	settings.RegisterRoutes(r, settingsSvc)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}

func readyHandler(medsSvc *medications.Service, tracker *intake.Tracker, settingsSvc *settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if !medsSvc.Ready() || !tracker.Ready() || !settingsSvc.Ready() {
			http.Error(w, "loading", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}
}
