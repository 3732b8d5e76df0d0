package mux

import (
	"cardbot-server/internal/jwt"
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxControllerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/auth").Handler(this.postAuth())
	}

	// requires bearer authorization
	{
		r := this.authRouter
		r.Methods(http.MethodPost).Path("/plan").Handler(this.postPlan())
		r.Methods(http.MethodGet).Path("/rounds").Handler(this.getRounds())
		r.Methods(http.MethodGet).Path("/rounds/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Handler(this.getRoundUUID())
		r.Methods(http.MethodGet).Path("/session/ws").Handler(this.getSessionWS())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		controller, err := jwt.ValidController(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxControllerKey, controller)
		w.Header().Set("Cardbot-Controller", controller)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
