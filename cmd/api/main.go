package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/academix/school-system/internal/api"
	"github.com/academix/school-system/internal/core/domain"
	"github.com/academix/school-system/internal/core/service"
	"github.com/academix/school-system/internal/infrastructure/cache"
	"github.com/academix/school-system/internal/infrastructure/config"
	mongodb "github.com/academix/school-system/internal/infrastructure/db/mongo"
	redisdb "github.com/academix/school-system/internal/infrastructure/db/redis"
	"github.com/academix/school-system/internal/infrastructure/queue"
	"github.com/academix/school-system/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Env: cfg.Env})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	studentRepo := mongodb.NewStudentRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	markRepo := mongodb.NewMarkRepository(db)
	semesterRepo := mongodb.NewSemesterRepository(db)
	resultRepo := mongodb.NewResultRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	if err := seedAdmin(ctx, userRepo, cfg); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- Infrastructure ---
	qc := cache.New(cfg.CacheTTL)
	audit := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, logger.With("audit"))
	audit.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(userRepo, studentRepo, sessions, cfg.JWTSecret, cfg.SessionTTL, logger.With("auth"))
	studentService := service.NewStudentService(studentRepo, qc, audit, logger.With("students"))
	attendanceService := service.NewAttendanceService(attendanceRepo, qc, audit, logger.With("attendance"))
	semesterService := service.NewSemesterService(semesterRepo, qc, audit, logger.With("semesters"))
	markService := service.NewMarkService(markRepo, semesterService, qc, audit, logger.With("marks"))
	resultService := service.NewResultService(resultRepo, semesterService, qc, audit, logger.With("results"))
	eventService := service.NewEventService(eventRepo, qc, audit, logger.With("events"))
	complaintService := service.NewComplaintService(complaintRepo, qc, audit, logger.With("complaints"))

	// Dependencies are up, open the cache for reads.
	qc.SetReady(true)

	e := api.NewRouter(api.Deps{
		Mongo:      db,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		Sessions:   sessions,
		Logger:     log,
		Auth:       authService,
		Students:   studentService,
		Attendance: attendanceService,
		Marks:      markService,
		Semesters:  semesterService,
		Results:    resultService,
		Events:     eventService,
		Complaints: complaintService,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// seedAdmin creates the bootstrap teacher account when no user with the
// configured username exists yet. An existing account is left untouched.
func seedAdmin(ctx context.Context, users *mongodb.UserRepository, cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		return nil
	}

	_, err := users.FindByUsername(ctx, cfg.Admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Username:     cfg.Admin.Username,
		PasswordHash: string(hash),
		Name:         cfg.Admin.Name,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
}
