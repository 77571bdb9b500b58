package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/config"
	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/death"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
	"github.com/osse101/AlbionStats_Go/internal/handler"
	"github.com/osse101/AlbionStats_Go/internal/hunt"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
	"github.com/osse101/AlbionStats_Go/internal/stats"
	"github.com/osse101/AlbionStats_Go/internal/web"
)

// Services are the domain services the routes call into
type Services struct {
	Hunts   hunt.Service
	Deaths  death.Service
	Builds  build.Service
	Stats   stats.Service
	Catalog equipment.Catalog
}

// Server owns the dashboard's HTTP listener
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewRouter(cfg, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree
func NewRouter(cfg *config.Config, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, NewRateLimiter(MaxRequestsPerIP, RateWindow)))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	pages := web.NewPages(svc.Stats, svc.Builds, svc.Catalog, web.NewFormatter(cfg.IconBaseURL, cfg.IconQuality))
	pages.Routes(r)

	r.Route("/api/v1", func(r chi.Router) {
		huntHandler := handler.NewHuntHandler(svc.Hunts)
		r.Route("/solo-hunts", func(r chi.Router) {
			r.Get("/", huntHandler.HandleListSoloHunts)
			r.Post("/", huntHandler.HandleCreateSoloHunt)
			r.Delete("/{id}", huntHandler.HandleDeleteSoloHunt)
		})
		r.Route("/group-hunts", func(r chi.Router) {
			r.Get("/", huntHandler.HandleListGroupHunts)
			r.Post("/", huntHandler.HandleCreateGroupHunt)
			r.Delete("/{id}", huntHandler.HandleDeleteGroupHunt)
		})

		deathHandler := handler.NewDeathHandler(svc.Deaths)
		r.Route("/deaths", func(r chi.Router) {
			r.Get("/", deathHandler.HandleListDeaths)
			r.Post("/", deathHandler.HandleCreateDeath)
			r.Delete("/{id}", deathHandler.HandleDeleteDeath)
		})

		buildHandler := handler.NewBuildHandler(svc.Builds)
		r.Route("/builds", func(r chi.Router) {
			r.Get("/", buildHandler.HandleListBuilds)
			r.Post("/", buildHandler.HandleCreateBuild)
			r.Get("/{id}", buildHandler.HandleGetBuild)
			r.Put("/{id}", buildHandler.HandleUpdateBuild)
			r.Delete("/{id}", buildHandler.HandleDeleteBuild)
		})

		equipmentHandler := handler.NewEquipmentHandler(svc.Catalog)
		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", equipmentHandler.HandleListCategories)
			r.Get("/resolve", equipmentHandler.HandleResolve)
			r.Get("/{category}", equipmentHandler.HandleListEquipment)
		})

		r.Get("/characters", handler.HandleGetCharacters(svc.Stats))
		r.Get("/stats/summary", handler.HandleGetSummary(svc.Stats))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, prefix := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
