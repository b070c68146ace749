package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/academix/school-system/internal/core/ports"
)

// ctxActor extracts the audit actor injected by the Auth middleware.
func ctxActor(c echo.Context) ports.Actor {
	name, _ := c.Get("name").(string)
	role, _ := c.Get("role").(string)
	return ports.Actor{Name: name, Role: role}
}

// ctxStudent extracts the caller's student identity and fails fast when the
// claims are structurally valid but operationally unusable: a student session
// without a student id cannot be scoped to its own records.
func ctxStudent(c echo.Context) (id, name string, err error) {
	id, _ = c.Get("student_id").(string)
	if id == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "session missing student identity")
	}
	name, _ = c.Get("student_name").(string)
	return id, name, nil
}
