// Package httpapi is the boundary layer of the identity service: it decodes
// and validates requests, invokes the account workflows, and translates
// internal failures into HTTP status codes. Detailed causes stay in the
// server log; clients get generic messages.
package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrip/identity/internal/logging"
	"github.com/nutritrip/identity/internal/server/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 1 << 20

// AccountService is the part of the account workflows the handlers use.
type AccountService interface {
	SignUp(ctx context.Context, p services.SignUpParams) (*services.Identity, error)
	Login(ctx context.Context, email, password string) (*services.Identity, error)
}

type Server struct {
	address  string
	logger   logging.Logger
	accounts AccountService
}

func NewServer(address string, l logging.Logger, accounts AccountService) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		accounts: accounts,
	}
}

// Handler builds the route table. Exposed separately from Run so tests can
// drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/auth/signup", s.instrument("signup", s.handleSignup))
	mux.Handle("/auth/login", s.instrument("login", s.handleLogin))
	mux.Handle("/health", s.instrument("health", s.handleHealth))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// statusRecorder captures the response code for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type ctxKey int

const loggerKey ctxKey = iota

// instrument attaches a request-scoped logger (tagged with a request id) to
// the context and records metrics for the handler.
func (s *Server) instrument(name string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := s.logger.With("request_id", uuid.NewString(), "handler", name)
		ctx := context.WithValue(r.Context(), loggerKey, log)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r.WithContext(ctx))

		requestsTotal.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	})
}

// reqLogger returns the request-scoped logger, falling back to the server's.
func (s *Server) reqLogger(ctx context.Context) logging.Logger {
	if l, ok := ctx.Value(loggerKey).(logging.Logger); ok {
		return l
	}
	return s.logger
}
