package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"actforbd/internal/delivery/http/helpers"
	"actforbd/internal/delivery/http/middleware"
	"actforbd/internal/domain"
)

type JoinedEventController struct {
	Logger  *slog.Logger
	Service domain.JoinedEventService
}

func NewJoinedEventController(logger *slog.Logger, svc domain.JoinedEventService) *JoinedEventController {
	return &JoinedEventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListJoinedEvents godoc
// @Summary List the caller's joined events
// @Description Returns the joins of the given email ordered by eventDate ascending. The email must be the authenticated user's.
// @Tags joined-events
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Success 200 {array} domain.JoinedEvent
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /joinedEvent [get]
func (c *JoinedEventController) ListJoinedEvents(w http.ResponseWriter, r *http.Request) {
	joined, err := c.Service.ListJoinedEvents(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, joined)
}

// JoinEvent godoc
// @Summary Join an event
// @Description Records that userEmail joined eventId. Other body fields are stored too. Joining the same event twice yields 400.
// @Tags joined-events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param join body domain.JoinedEvent true "Join document with eventId and userEmail"
// @Success 200 {object} domain.InsertAck
// @Failure 400 {object} helpers.APIError "code: bad_request (malformed body or already joined)"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /joinedEvent [post]
func (c *JoinedEventController) JoinEvent(w http.ResponseWriter, r *http.Request) {
	doc, ok := helpers.DecodeDocument(w, r)
	if !ok {
		return
	}
	ack, err := c.Service.JoinEvent(r.Context(), domain.JoinedEvent(doc))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateJoin) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "User already joined this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ack)
}

// LeaveEvent godoc
// @Summary Leave an event
// @Description Deletes a join. Only the user who joined may delete it; ownership is taken from the token, not from the query string.
// @Tags joined-events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Join id (ObjectID hex)"
// @Success 200 {object} domain.DeleteAck
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /joinedEvent/{id} [delete]
func (c *JoinedEventController) LeaveEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	ack, err := c.Service.LeaveEvent(r.Context(), r.PathValue("id"), id.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Joined event not found")
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Forbidden: You can't delete events joined by other users")
		default:
			c.Logger.ErrorContext(r.Context(), "Error deleting joined event", "path", r.URL.Path, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "Server error deleting joined event")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ack)
}
