package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/ports"
)

type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

type complaintRequest struct {
	Message string `json:"message" validate:"required,min=10"`
}

type complaintResponse struct {
	ID        int64          `json:"id"`
	StudentID string         `json:"student_id"`
	Message   string         `json:"message"`
	Timestamp domain.Instant `json:"timestamp"`
}

// Submit handles POST /v1/me/complaints for the authenticated student.
//
// @Summary      Submit a complaint
// @Tags         complaints
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  complaintRequest  true  "Complaint"
// @Success      201
// @Failure      422  {object}  errorResponse
// @Router       /v1/me/complaints [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	var req complaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	studentID, studentName, err := ctxStudent(c)
	if err != nil {
		return err
	}
	if err := h.service.Submit(c.Request().Context(), studentID, studentName, req.Message); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// List handles GET /v1/complaints, most recent first. Teacher-only.
//
// @Summary      List complaints
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  complaintResponse
// @Router       /v1/complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	complaints, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]complaintResponse, 0, len(complaints))
	for _, cm := range complaints {
		out = append(out, complaintResponse{
			ID:        cm.ID,
			StudentID: cm.StudentID,
			Message:   cm.Message,
			Timestamp: domain.InstantOf(cm.Timestamp),
		})
	}
	return c.JSON(http.StatusOK, out)
}
