package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type MarkHandler struct {
	service ports.MarkService
}

func NewMarkHandler(service ports.MarkService) *MarkHandler {
	return &MarkHandler{service: service}
}

type markRequest struct {
	StudentID  string `json:"student_id"  validate:"required"`
	Subject    string `json:"subject"     validate:"required"`
	Score      int64  `json:"score"       validate:"gte=0"`
	MaxScore   int64  `json:"max_score"   validate:"gte=0"`
	SemesterID int64  `json:"semester_id" validate:"required"`
}

type gradedMarkResponse struct {
	Subject    string `json:"subject"`
	Score      int64  `json:"score"`
	MaxScore   int64  `json:"max_score"`
	Percentage int    `json:"percentage"`
	Grade      string `json:"grade"`
}

type semesterMarksResponse struct {
	SemesterID   int64                `json:"semester_id"`
	SemesterName string               `json:"semester_name"`
	Marks        []gradedMarkResponse `json:"marks"`
}

// Add handles POST /v1/marks.
//
// @Summary      Record a subject mark
// @Tags         marks
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  markRequest  true  "Mark"
// @Success      201
// @Failure      422  {object}  errorResponse
// @Router       /v1/marks [post]
func (h *MarkHandler) Add(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	if err := h.service.Add(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /v1/marks, rewriting every mark matching
// (student_id, subject, semester_id).
//
// @Summary      Update a subject mark
// @Tags         marks
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  markRequest  true  "Mark"
// @Success      204
// @Failure      422  {object}  errorResponse
// @Router       /v1/marks [put]
func (h *MarkHandler) Update(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/marks, optionally filtered by ?student_id=.
//
// @Summary      List marks
// @Tags         marks
// @Produce      json
// @Security     BearerAuth
// @Param        student_id  query  string  false  "Filter by student"
// @Success      200  {array}  domain.Mark
// @Router       /v1/marks [get]
func (h *MarkHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		marks []domain.Mark
		err   error
	)
	if studentID := c.QueryParam("student_id"); studentID != "" {
		marks, err = h.service.ListByStudent(ctx, studentID)
	} else {
		marks, err = h.service.ListAll(ctx)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, marks)
}

// Report handles GET /v1/me/marks: the authenticated student's marks grouped
// by semester in first-seen order, each graded.
//
// @Summary      Own marks grouped by semester with grades
// @Tags         marks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  semesterMarksResponse
// @Router       /v1/me/marks [get]
func (h *MarkHandler) Report(c echo.Context) error {
	studentID, _, err := ctxStudent(c)
	if err != nil {
		return err
	}

	groups, err := h.service.Report(c.Request().Context(), studentID)
	if err != nil {
		return err
	}

	out := make([]semesterMarksResponse, 0, len(groups))
	for _, g := range groups {
		marks := make([]gradedMarkResponse, 0, len(g.Marks))
		for _, m := range g.Marks {
			marks = append(marks, gradedMarkResponse{
				Subject:    m.Subject,
				Score:      m.Score,
				MaxScore:   m.MaxScore,
				Percentage: m.Percentage,
				Grade:      m.Grade,
			})
		}
		out = append(out, semesterMarksResponse{
			SemesterID:   g.SemesterID,
			SemesterName: g.SemesterName,
			Marks:        marks,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MarkHandler) bind(c echo.Context) (ports.MarkInput, error) {
	var req markRequest
	if err := c.Bind(&req); err != nil {
		return ports.MarkInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.MarkInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.MarkInput{
		StudentID:  req.StudentID,
		Subject:    req.Subject,
		Score:      req.Score,
		MaxScore:   req.MaxScore,
		SemesterID: req.SemesterID,
		Actor:      ctxActor(c),
	}, nil
}
