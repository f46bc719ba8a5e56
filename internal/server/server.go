package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"newsroom/internal/domain"
)

// IngestService triggers ingestion runs on demand.
type IngestService interface {
	Run(ctx context.Context) (*domain.IngestStats, error)
	RunHighPriority(ctx context.Context) (*domain.IngestStats, error)
}

// RotationService rotates the voting period immediately.
type RotationService interface {
	Rotate(ctx context.Context) (*domain.RotationResult, error)
}

// PeriodStore serves the read-only period endpoints.
type PeriodStore interface {
	GetActive(ctx context.Context) (*domain.VotingPeriod, error)
	ListArchived(ctx context.Context, limit int) ([]domain.VotingPeriod, error)
}

// ArticleStore serves winner lookups and community submissions.
type ArticleStore interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error)
	InsertSubmission(ctx context.Context, sub *domain.Submission) (int64, error)
}

// Config holds the HTTP surface configuration.
type Config struct {
	Addr string
	// CronSecret protects the job-trigger endpoints. Empty disables the
	// check.
	CronSecret  string
	Environment string
}

// Server is the HTTP surface: job triggers for the scheduler and a few
// operational read endpoints.
type Server struct {
	router   *chi.Mux
	ingest   IngestService
	rotation RotationService
	periods  PeriodStore
	articles ArticleStore
	cfg      Config
	logger   *slog.Logger
}

func New(ingest IngestService, rotation RotationService, periods PeriodStore, articles ArticleStore, cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		ingest:   ingest,
		rotation: rotation,
		periods:  periods,
		articles: articles,
		cfg:      cfg,
		logger:   logger.With("component", "server"),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(5 * time.Minute))

	s.router.Group(func(r chi.Router) {
		r.Use(s.requireCronSecret)
		r.Post("/fetch-news", s.handleFetchNews)
		r.Post("/rotate-period", s.handleRotatePeriod)
	})

	s.router.Get("/voting-period", s.handleVotingPeriod)
	s.router.Get("/winners", s.handleWinners)
	s.router.Post("/submit-article", s.handleSubmitArticle)

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
