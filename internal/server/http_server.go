package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mediconsult/platform/internal/config"
	"github.com/mediconsult/platform/internal/handler"
	"github.com/mediconsult/platform/internal/logger"
)

// Handlers — все обработчики, которые регистрирует роутер.
type Handlers struct {
	Specialties      *handler.SpecialtyHandler
	Symptoms         *handler.SymptomHandler
	Doctors          *handler.DoctorHandler
	Schedules        *handler.ScheduleHandler
	PreConsultations *handler.PreConsultationHandler
	Appointments     *handler.AppointmentHandler
}

// NewRouter собирает gin-роутер со всеми маршрутами API.
func NewRouter(cfg config.HTTPConfig, log *logger.Logger, h Handlers) *gin.Engine {
	gin.SetMode(ginMode(cfg.Mode))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/specialties", h.Specialties.List)
		api.GET("/specialties/:id", h.Specialties.Get)

		api.GET("/symptoms", h.Symptoms.List)
		api.GET("/symptoms/categories", h.Symptoms.Categories)

		api.GET("/doctors", h.Doctors.List)
		api.GET("/doctors/:id", h.Doctors.Get)
		api.GET("/doctors/:id/schedules", h.Doctors.Schedules)
		api.GET("/doctors/:id/slots", h.Doctors.Slots)

		api.POST("/schedules", h.Schedules.Create)
		api.PUT("/schedules/:id", h.Schedules.Update)
		api.DELETE("/schedules/:id", h.Schedules.Delete)

		api.POST("/pre-consultations", h.PreConsultations.Store)
		api.POST("/pre-consultations/suggest", h.PreConsultations.Suggest)
		api.GET("/pre-consultations", h.PreConsultations.Index)
		api.GET("/pre-consultations/:id", h.PreConsultations.Show)

		api.GET("/appointments", h.Appointments.Index)
		api.POST("/appointments", h.Appointments.Store)
		api.GET("/appointments/:id", h.Appointments.Show)
		api.PUT("/appointments/:id", h.Appointments.Update)
		api.DELETE("/appointments/:id", h.Appointments.Destroy)
	}

	return r
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}

// requestLogger пишет строку на каждый запрос.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
