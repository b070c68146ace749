package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academix/school-system/internal/api/handler"
	"github.com/academix/school-system/internal/api/middleware"
	"github.com/academix/school-system/internal/core/ports"
)

// Deps bundles everything the router needs; cmd/api wires it up.
type Deps struct {
	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Sessions  ports.SessionStore
	Logger    zerolog.Logger

	Auth       ports.AuthService
	Students   ports.StudentService
	Attendance ports.AttendanceService
	Marks      ports.MarkService
	Semesters  ports.SemesterService
	Results    ports.ResultService
	Events     ports.EventService
	Complaints ports.ComplaintService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("school"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	studentHandler := handler.NewStudentHandler(d.Students)
	attendanceHandler := handler.NewAttendanceHandler(d.Attendance)
	markHandler := handler.NewMarkHandler(d.Marks)
	semesterHandler := handler.NewSemesterHandler(d.Semesters)
	resultHandler := handler.NewResultHandler(d.Results)
	eventHandler := handler.NewEventHandler(d.Events)
	complaintHandler := handler.NewComplaintHandler(d.Complaints)
	healthHandler := handler.NewHealthHandler(d.Mongo, d.Redis)

	authn := middleware.Auth(d.JWTSecret, d.Sessions)

	// --- Auth routes ---
	e.POST("/auth/teacher/login", authHandler.TeacherLogin)
	e.POST("/auth/student/login", authHandler.StudentLogin)
	e.POST("/auth/logout", authHandler.Logout, authn)
	e.GET("/auth/profile", authHandler.Profile, authn)

	// --- Teacher routes ---
	teacher := e.Group("/v1", authn, middleware.RequireRole("teacher"))
	teacher.GET("/students", studentHandler.List)
	teacher.POST("/students", studentHandler.Create)
	teacher.GET("/attendance", attendanceHandler.List)
	teacher.POST("/attendance", attendanceHandler.Add)
	teacher.PUT("/attendance", attendanceHandler.Update)
	teacher.GET("/marks", markHandler.List)
	teacher.POST("/marks", markHandler.Add)
	teacher.PUT("/marks", markHandler.Update)
	teacher.GET("/semesters", semesterHandler.List)
	teacher.POST("/semesters", semesterHandler.Add)
	teacher.GET("/exam-results", resultHandler.List)
	teacher.POST("/exam-results", resultHandler.Add)
	teacher.POST("/events", eventHandler.Create)
	teacher.PUT("/events/:id", eventHandler.Update)
	teacher.DELETE("/events/:id", eventHandler.Delete)
	teacher.GET("/complaints", complaintHandler.List)

	// --- Student self-service routes ---
	me := e.Group("/v1/me", authn, middleware.RequireRole("student"))
	me.GET("/attendance", attendanceHandler.Overview)
	me.GET("/marks", markHandler.Report)
	me.GET("/exam-results", resultHandler.Report)
	me.POST("/complaints", complaintHandler.Submit)

	// The calendar is the one resource both roles read.
	e.GET("/v1/events", eventHandler.Calendar, authn, middleware.RequireRole("teacher", "student"))

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
