package router

import (
	"net/http"
	"time"

	_ "baby-journal/docs"

	mem "baby-journal/internal/adapters/storage/memory"
	"baby-journal/internal/codec/tabular"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/profile"
	"baby-journal/internal/domain/transfer"
	"baby-journal/internal/middleware"
	"baby-journal/internal/platform/logger"
	"baby-journal/internal/ports/slots"
	"baby-journal/internal/remote"
	"baby-journal/internal/sqldump"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Store es el backend de slots; nil => memoria (modo dev).
	Store       slots.Store
	EventsSlot  string
	ProfileSlot string

	// Remote vacío deja /sync respondiendo 503.
	Remote remote.Config

	Logger logger.Logger

	// ImportLocation para fechas sin zona del CSV; nil => UTC.
	ImportLocation *time.Location

	// AllowedOrigins para CORS; vacío => cualquiera.
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewSlotStore()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	eventsSvc := events.NewService(events.NewSlotRepository(store, opts.EventsSlot), log)
	profileSvc := profile.NewService(profile.NewSlotRepository(store, opts.ProfileSlot), eventsSvc)
	transferH := transfer.NewHandler(eventsSvc, tabular.NewImporter(opts.ImportLocation, log), sqldump.NewRenderer(""), log)
	bridge := remote.NewBridge(opts.Remote, eventsSvc, log)

	if !bridge.Configured() {
		log.Info("remote sync disabled", map[string]any{"endpoint": opts.Remote.Endpoint})
	}

	// Rutas por módulo
	events.RegisterRoutes(r, eventsSvc)
	profile.RegisterRoutes(r, profileSvc)
	transfer.RegisterRoutes(r, transferH)
	remote.RegisterRoutes(r, bridge)

	return r
}
