package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"actforbd/internal/delivery/http/controllers"
	"actforbd/internal/delivery/http/middleware"
	"actforbd/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	events *controllers.EventController,
	joined *controllers.JoinedEventController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)
	owner := middleware.RequireQueryEmail()

	mux.HandleFunc("GET /{$}", controllers.Health)

	// Events
	mux.HandleFunc("POST /events", middleware.Chain(events.CreateEvent, auth))
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /myEvents", middleware.Chain(events.ListMyEvents, auth, owner))
	mux.HandleFunc("GET /events/{id}", events.GetEvent)
	mux.HandleFunc("PUT /events/{id}", middleware.Chain(events.UpdateEvent, auth))
	mux.HandleFunc("DELETE /events/{id}", middleware.Chain(events.DeleteEvent, auth, owner))
	mux.HandleFunc("GET /eventTypes", events.ListEventTypes)

	// Joined events
	mux.HandleFunc("GET /joinedEvent", middleware.Chain(joined.ListJoinedEvents, auth, owner))
	mux.HandleFunc("POST /joinedEvent", middleware.Chain(joined.JoinEvent, auth))
	mux.HandleFunc("DELETE /joinedEvent/{id}", middleware.Chain(joined.LeaveEvent, auth))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with request id, logging, panic recovery and CORS, outermost first.
func NewHandler(mux http.Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	var h http.Handler = middleware.CORS(allowedOrigins, mux)
	h = middleware.Recovery(logger, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
