package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"actforbd/internal/delivery/http/helpers"
	"actforbd/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Stores the request body as a new event. Any fields are accepted; title, eventType, email and eventDate are the ones the app uses. A client-supplied _id is ignored.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.Event true "Event document"
// @Success 200 {object} domain.InsertAck
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	doc, ok := helpers.DecodeDocument(w, r)
	if !ok {
		return
	}
	ack, err := c.Service.CreateEvent(r.Context(), domain.Event(doc))
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ack)
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event matching the filters. eventType is an exact match and "All" disables it; search is a case-insensitive substring of title.
// @Tags events
// @Produce json
// @Param eventType query string false "Event type, or All"
// @Param search query string false "Title substring"
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := c.Service.ListEvents(r.Context(), q.Get("eventType"), q.Get("search"))
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// ListMyEvents godoc
// @Summary List the caller's events
// @Description Returns the events whose email is the given email. The email must be the authenticated user's.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Success 200 {array} domain.Event
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /myEvents [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEventsByOwner(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by id
// @Description Returns the event, or null when no event has this id.
// @Tags events
// @Produce json
// @Param id path string true "Event id (ObjectID hex)"
// @Success 200 {object} domain.Event "the event or null"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Sets every body field on the event whose id and email match the path id and the body email. Other stored fields are kept. A missing event and a different owner both yield 403.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id (ObjectID hex)"
// @Param event body domain.Event true "Fields to set, including email"
// @Success 200 {object} domain.UpdateAck
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	doc, ok := helpers.DecodeDocument(w, r)
	if !ok {
		return
	}
	ack, err := c.Service.UpdateEvent(r.Context(), r.PathValue("id"), domain.Event(doc))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Unauthorized or event not found")
			return
		}
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ack)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event with this id owned by the given email. The email must be the authenticated user's. A missing event and a different owner both yield 403.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id (ObjectID hex)"
// @Param email query string true "Caller email"
// @Success 200 {object} domain.DeleteAck
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 403 {object} helpers.APIError "code: forbidden"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ack, err := c.Service.DeleteEvent(r.Context(), r.PathValue("id"), r.URL.Query().Get("email"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Unauthorized or not found")
			return
		}
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ack)
}

// ListEventTypes godoc
// @Summary List event types
// @Description Returns the distinct eventType values of all events.
// @Tags events
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /eventTypes [get]
func (c *EventController) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	types, err := c.Service.ListEventTypes(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, types)
}

func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid id")
		return
	}
	c.internalError(w, r, err)
}

func (c *EventController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
