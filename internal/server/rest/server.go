// Package rest exposes the account operations over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/services"
)

// UserService is the account logic the handlers drive.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (services.Outcome, error)
	Login(ctx context.Context, in services.LoginInput) (*services.LoginResult, error)
	Update(ctx context.Context, acting *models.User, patch services.UpdateInput) (services.Outcome, error)
	Delete(ctx context.Context, acting *models.User, targetID string) (services.Outcome, error)
}

// Authenticator resolves a raw token to an account.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*models.User, error)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	cfg      *config.Config
	log      logging.Logger
	users    UserService
	auth     Authenticator
	db       Pinger
	validate *validator.Validate
	router   chi.Router
}

// NewServer wires routes and middleware. db may be nil, in which case the
// health check always reports ok.
func NewServer(cfg *config.Config, log logging.Logger, us UserService, auth Authenticator, db Pinger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log.With("module", "rest"),
		users:    us,
		auth:     auth,
		db:       db,
		validate: newValidator(),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", common.AuthHeaderName, common.LegacyAuthHeaderName},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)

	r.Route("/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rateLimit(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst, s.log))
			r.Post("/register", s.register)
			r.Post("/login", s.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authGuard(s.auth, s.log))
			r.Put("/update", s.update)
			r.Delete("/delete/{id}", s.delete)
		})
	})

	return r
}

// ServeHTTP lets the server be mounted or driven by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on cfg.EndpointAddrHTTP until ctx is cancelled, then shuts
// down, giving in-flight requests cfg.ShutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.EndpointAddrHTTP,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info(context.Background(), "stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
