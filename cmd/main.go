package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mediconsult/platform/internal/config"
	"github.com/mediconsult/platform/internal/db"
	"github.com/mediconsult/platform/internal/handler"
	"github.com/mediconsult/platform/internal/logger"
	"github.com/mediconsult/platform/internal/model"
	"github.com/mediconsult/platform/internal/repository"
	"github.com/mediconsult/platform/internal/seed"
	"github.com/mediconsult/platform/internal/server"
	"github.com/mediconsult/platform/internal/service"
	"github.com/mediconsult/platform/internal/slots"
	"github.com/mediconsult/platform/internal/suggestion"
)

func main() {
	// .env нужен только для локального запуска
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLogger, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLogger.Sync()

	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		appLogger.Fatalw("database connect failed", "error", err)
	}

	if err := model.AutoMigrate(gormDB); err != nil {
		appLogger.Fatalw("migration failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDemoData {
		if err := seed.Demo(ctx, gormDB, appLogger); err != nil {
			appLogger.Fatalw("seed failed", "error", err)
		}
	}

	// репозитории
	specialtyRepo := repository.NewGormSpecialtyRepository(gormDB)
	symptomRepo := repository.NewGormSymptomRepository(gormDB)
	weightRepo := repository.NewGormWeightRepository(gormDB)
	doctorRepo := repository.NewGormDoctorRepository(gormDB)
	scheduleRepo := repository.NewGormScheduleRepository(gormDB)
	appointmentRepo := repository.NewGormAppointmentRepository(gormDB)
	preConsultationRepo := repository.NewGormPreConsultationRepository(gormDB)

	// ядро
	engine := suggestion.NewEngine(weightRepo, specialtyRepo)
	calculator := slots.NewCalculator(scheduleRepo, appointmentRepo)

	// сервисы
	preConsultationService := service.NewPreConsultationService(engine, preConsultationRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	router := server.NewRouter(cfg.HTTP, appLogger, server.Handlers{
		Specialties:      handler.NewSpecialtyHandler(specialtyRepo),
		Symptoms:         handler.NewSymptomHandler(symptomRepo),
		Doctors:          handler.NewDoctorHandler(doctorRepo, scheduleRepo, calculator),
		Schedules:        handler.NewScheduleHandler(scheduleRepo, doctorRepo),
		PreConsultations: handler.NewPreConsultationHandler(preConsultationService),
		Appointments:     handler.NewAppointmentHandler(appointmentService),
	})

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		appLogger.Infow("http server starting", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorw("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("http server shutdown failed", "error", err)
		os.Exit(1)
	}
	appLogger.Infow("server stopped")
}
