package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

type eventRequest struct {
	Title       string         `json:"title"       validate:"required"`
	Description string         `json:"description"`
	Date        domain.Instant `json:"date"        validate:"required"`
}

type eventResponse struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        domain.Instant `json:"date"`
}

type eventCalendarResponse struct {
	Upcoming []eventResponse `json:"upcoming"`
	Past     []eventResponse `json:"past"`
}

// Calendar handles GET /v1/events: events bucketed around now, upcoming
// soonest first and past most recent first. Visible to both roles.
//
// @Summary      Event calendar
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  eventCalendarResponse
// @Router       /v1/events [get]
func (h *EventHandler) Calendar(c echo.Context) error {
	calendar, err := h.service.Calendar(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventCalendarResponse{
		Upcoming: toEventResponses(calendar.Upcoming),
		Past:     toEventResponses(calendar.Past),
	})
}

// Create handles POST /v1/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  eventRequest  true  "Event"
// @Success      201
// @Failure      422  {object}  errorResponse
// @Router       /v1/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	if err := h.service.Create(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /v1/events/:id.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int           true  "Event id"
// @Param        body  body  eventRequest  true  "Event"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), id, in); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/events/:id.
//
// @Summary      Delete an event
// @Tags         events
// @Security     BearerAuth
// @Param        id  path  int  true  "Event id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id, ctxActor(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EventHandler) bind(c echo.Context) (ports.EventInput, error) {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EventInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.Time(),
		Actor:       ctxActor(c),
	}, nil
}

func eventID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}
	return id, nil
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Date:        domain.InstantOf(e.Date),
		})
	}
	return out
}
