package http

import (
	"context"
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
	"github.com/harsh2b/WellMate/pkg/domain/types"
	"github.com/harsh2b/WellMate/pkg/utils/safe"
)

//go:embed static
var staticFiles embed.FS

// UseCase is the session/transcript manager surface the HTTP layer depends
// on.
type UseCase interface {
	CreateSession(ctx context.Context) (types.SessionID, error)
	UpsertPatientInfo(ctx context.Context, sessionID types.SessionID, update guest.PatientUpdate) error
	Chat(ctx context.Context, sessionID types.SessionID, userMessage string) (string, error)
}

type Server struct {
	router      *chi.Mux
	uc          UseCase
	cookie      *sessionCookie
	corsOrigins []string
}

type Options func(*Server)

// WithCookieSecret sets the key used to sign the transport-level session
// cookie.
func WithCookieSecret(secret string) Options {
	return func(s *Server) {
		s.cookie = newSessionCookie([]byte(secret))
	}
}

// WithCORSOrigins sets the origins allowed to call the API from a browser.
func WithCORSOrigins(origins []string) Options {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		cookie: newSessionCookie(nil),
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)
	r.Use(corsMiddleware(s.corsOrigins))

	r.Get("/test", testHandler())
	r.Get("/", landingHandler())

	r.Post("/new-chat", newChatHandler(s.uc, s.cookie))
	r.Post("/update-patient", updatePatientHandler(s.uc))
	r.Post("/chat", chatHandler(s.uc))
	r.Post("/logout", logoutHandler(s.cookie))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func testHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "Server is running",
			"message": "Test endpoint reached",
		})
	}
}

// landingHandler serves the embedded landing page.
func landingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(staticFiles, "static/index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		safe.Write(r.Context(), w, page)
	}
}
