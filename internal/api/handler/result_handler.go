package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/ports"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{service: service}
}

type resultRequest struct {
	StudentID  string `json:"student_id"  validate:"required"`
	SemesterID int64  `json:"semester_id" validate:"required"`
	Subject    string `json:"subject"     validate:"required"`
	Score      int64  `json:"score"       validate:"gte=0"`
	MaxScore   int64  `json:"max_score"   validate:"gte=0"`
}

type gradedResultResponse struct {
	Subject    string `json:"subject"`
	Score      int64  `json:"score"`
	MaxScore   int64  `json:"max_score"`
	Percentage int    `json:"percentage"`
	Grade      string `json:"grade"`
}

type semesterResultsResponse struct {
	SemesterID        int64                  `json:"semester_id"`
	SemesterName      string                 `json:"semester_name"`
	Results           []gradedResultResponse `json:"results"`
	OverallPercentage int                    `json:"overall_percentage"`
	OverallGrade      string                 `json:"overall_grade"`
}

// Add handles POST /v1/exam-results.
//
// @Summary      Record a semester exam result
// @Tags         results
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  resultRequest  true  "Exam result"
// @Success      201
// @Failure      422  {object}  errorResponse
// @Router       /v1/exam-results [post]
func (h *ResultHandler) Add(c echo.Context) error {
	var req resultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.service.Add(c.Request().Context(), ports.ResultInput{
		StudentID:  req.StudentID,
		SemesterID: req.SemesterID,
		Subject:    req.Subject,
		Score:      req.Score,
		MaxScore:   req.MaxScore,
		Actor:      ctxActor(c),
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// List handles GET /v1/exam-results?student_id=.
//
// @Summary      List exam results for a student
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        student_id  query  string  true  "Student id"
// @Success      200  {array}  domain.SemesterExamResult
// @Router       /v1/exam-results [get]
func (h *ResultHandler) List(c echo.Context) error {
	studentID := c.QueryParam("student_id")
	if studentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student_id is required")
	}

	results, err := h.service.ListByStudent(c.Request().Context(), studentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// Report handles GET /v1/me/exam-results: the authenticated student's exam
// results grouped by semester, each graded, with the weighted overall per
// semester.
//
// @Summary      Own exam results grouped by semester with overall grade
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  semesterResultsResponse
// @Router       /v1/me/exam-results [get]
func (h *ResultHandler) Report(c echo.Context) error {
	studentID, _, err := ctxStudent(c)
	if err != nil {
		return err
	}

	groups, err := h.service.Report(c.Request().Context(), studentID)
	if err != nil {
		return err
	}

	out := make([]semesterResultsResponse, 0, len(groups))
	for _, g := range groups {
		results := make([]gradedResultResponse, 0, len(g.Results))
		for _, r := range g.Results {
			results = append(results, gradedResultResponse{
				Subject:    r.Subject,
				Score:      r.Score,
				MaxScore:   r.MaxScore,
				Percentage: r.Percentage,
				Grade:      r.Grade,
			})
		}
		out = append(out, semesterResultsResponse{
			SemesterID:        g.SemesterID,
			SemesterName:      g.SemesterName,
			Results:           results,
			OverallPercentage: g.OverallPercentage,
			OverallGrade:      g.OverallGrade,
		})
	}
	return c.JSON(http.StatusOK, out)
}
