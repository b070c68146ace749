package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type attendanceRequest struct {
	StudentID string         `json:"student_id" validate:"required"`
	Date      domain.Instant `json:"date"       validate:"required"`
	Status    string         `json:"status"     validate:"required,oneof=present absent"`
}

type attendanceResponse struct {
	StudentID string         `json:"student_id"`
	Date      domain.Instant `json:"date"`
	Status    string         `json:"status"`
}

type attendanceOverviewResponse struct {
	Records        []attendanceResponse `json:"records"`
	Rate           int                  `json:"rate"`
	BelowThreshold bool                 `json:"below_threshold"`
}

// Add handles POST /v1/attendance.
//
// @Summary      Record attendance for a student on a day
// @Tags         attendance
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  attendanceRequest  true  "Attendance record"
// @Success      201
// @Failure      422  {object}  errorResponse
// @Router       /v1/attendance [post]
func (h *AttendanceHandler) Add(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	if err := h.service.Add(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /v1/attendance. It rewrites the status of every record
// matching (student_id, date); matching nothing is not an error.
//
// @Summary      Update attendance for a student on a day
// @Tags         attendance
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  attendanceRequest  true  "Attendance record"
// @Success      204
// @Failure      422  {object}  errorResponse
// @Router       /v1/attendance [put]
func (h *AttendanceHandler) Update(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/attendance, optionally filtered by ?student_id=.
//
// @Summary      List attendance records
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        student_id  query  string  false  "Filter by student"
// @Success      200  {array}  attendanceResponse
// @Router       /v1/attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		records []domain.Attendance
		err     error
	)
	if studentID := c.QueryParam("student_id"); studentID != "" {
		records, err = h.service.ListByStudent(ctx, studentID)
	} else {
		records, err = h.service.ListAll(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAttendanceResponses(records))
}

// Overview handles GET /v1/me/attendance for the authenticated student.
//
// @Summary      Own attendance records plus rate summary
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  attendanceOverviewResponse
// @Router       /v1/me/attendance [get]
func (h *AttendanceHandler) Overview(c echo.Context) error {
	studentID, _, err := ctxStudent(c)
	if err != nil {
		return err
	}

	overview, err := h.service.Overview(c.Request().Context(), studentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attendanceOverviewResponse{
		Records:        toAttendanceResponses(overview.Records),
		Rate:           overview.Summary.Rate,
		BelowThreshold: overview.Summary.BelowThreshold,
	})
}

func (h *AttendanceHandler) bind(c echo.Context) (ports.AttendanceInput, error) {
	var req attendanceRequest
	if err := c.Bind(&req); err != nil {
		return ports.AttendanceInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.AttendanceInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.AttendanceInput{
		StudentID: req.StudentID,
		Date:      req.Date.Time(),
		Status:    domain.AttendanceStatus(req.Status),
		Actor:     ctxActor(c),
	}, nil
}

func toAttendanceResponses(records []domain.Attendance) []attendanceResponse {
	out := make([]attendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, attendanceResponse{
			StudentID: r.StudentID,
			Date:      domain.InstantOf(r.Date),
			Status:    string(r.Status),
		})
	}
	return out
}
