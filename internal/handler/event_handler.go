package handler

import (
	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/service"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for club events.
type EventHandler struct {
	service service.EventServicer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service service.EventServicer) *EventHandler {
	return &EventHandler{service: service}
}

// CreateEvent godoc
// @Summary      Create a club event
// @Description  Create an event in the club. Requires the admin role in the club.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        name  path      string                     true  "Club name"
// @Param        body  body      models.CreateEventRequest  true  "Event details"
// @Success      201   {object}  response.Response{data=models.Event}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/event [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := decodeJSON(c, &req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), middleware.GetSession(c), c.Param("name"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "Event created successfully", event)
}

// ListEvents godoc
// @Summary      List club events
// @Description  Retrieve all events of a club, soonest first
// @Tags         events
// @Produce      json
// @Param        name  path      string  true  "Club name"
// @Success      200   {object}  response.Response{data=models.EventListResponse}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /clubs/{name}/event [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	result, err := h.service.ListEvents(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Events found successfully", result)
}

// GetEvent godoc
// @Summary      Get a club event
// @Tags         events
// @Produce      json
// @Param        name   path      string  true  "Club name"
// @Param        event  path      string  true  "Event ID"
// @Success      200    {object}  response.Response{data=models.Event}
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /clubs/{name}/event/{event} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.service.GetEvent(c.Request.Context(), c.Param("name"), c.Param("event"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Event found successfully", event)
}

// UpdateEvent godoc
// @Summary      Update a club event
// @Description  Update an event. Requires the admin role in the club that owns the event.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        name   path      string                     true  "Club name"
// @Param        event  path      string                     true  "Event ID"
// @Param        body   body      models.UpdateEventRequest  true  "Fields to update"
// @Success      200    {object}  response.Response{data=models.Event}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/event/{event} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req models.UpdateEventRequest
	if err := decodeJSON(c, &req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), middleware.GetSession(c), c.Param("name"), c.Param("event"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Event updated successfully", event)
}

// DeleteEvent godoc
// @Summary      Delete a club event
// @Description  Delete an event. Requires the admin role in the club that owns the event.
// @Tags         events
// @Produce      json
// @Param        name   path      string  true  "Club name"
// @Param        event  path      string  true  "Event ID"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/event/{event} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Request.Context(), middleware.GetSession(c), c.Param("name"), c.Param("event")); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Event deleted successfully", nil)
}
