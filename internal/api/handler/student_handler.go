package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

type createStudentRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type studentResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// List handles GET /v1/students.
//
// @Summary      List all students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  studentResponse
// @Router       /v1/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /v1/students.
//
// @Summary      Enrol a new student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStudentRequest  true  "Student details"
// @Success      201   {object}  studentResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	student, err := h.service.Create(c.Request().Context(), ports.CreateStudentInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Actor:    ctxActor(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toStudentResponse(*student))
}

func toStudentResponse(s domain.Student) studentResponse {
	return studentResponse{ID: s.ID, Username: s.Username, Name: s.Name}
}
