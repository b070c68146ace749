package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type SemesterHandler struct {
	service ports.SemesterService
}

func NewSemesterHandler(service ports.SemesterService) *SemesterHandler {
	return &SemesterHandler{service: service}
}

type semesterRequest struct {
	Name      string         `json:"name"       validate:"required"`
	StartDate domain.Instant `json:"start_date" validate:"required"`
	EndDate   domain.Instant `json:"end_date"   validate:"required"`
}

type semesterResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	StartDate domain.Instant `json:"start_date"`
	EndDate   domain.Instant `json:"end_date"`
}

// List handles GET /v1/semesters.
//
// @Summary      List semesters in creation order
// @Tags         semesters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  semesterResponse
// @Router       /v1/semesters [get]
func (h *SemesterHandler) List(c echo.Context) error {
	semesters, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]semesterResponse, 0, len(semesters))
	for _, s := range semesters {
		out = append(out, toSemesterResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// Add handles POST /v1/semesters.
//
// @Summary      Create a semester
// @Tags         semesters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      semesterRequest  true  "Semester"
// @Success      201   {object}  semesterResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/semesters [post]
func (h *SemesterHandler) Add(c echo.Context) error {
	var req semesterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	semester, err := h.service.Add(c.Request().Context(), ports.SemesterInput{
		Name:      req.Name,
		StartDate: req.StartDate.Time(),
		EndDate:   req.EndDate.Time(),
		Actor:     ctxActor(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSemesterResponse(*semester))
}

func toSemesterResponse(s domain.Semester) semesterResponse {
	return semesterResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartDate: domain.InstantOf(s.StartDate),
		EndDate:   domain.InstantOf(s.EndDate),
	}
}
