package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/auth"
	"github.com/BruksfildServices01/vet-clinic/internal/config"
	"github.com/BruksfildServices01/vet-clinic/internal/events"
	"github.com/BruksfildServices01/vet-clinic/internal/handlers"
	infraRepo "github.com/BruksfildServices01/vet-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/vet-clinic/internal/metrics"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
	"github.com/BruksfildServices01/vet-clinic/internal/models"
	"github.com/BruksfildServices01/vet-clinic/internal/photos"
	"github.com/BruksfildServices01/vet-clinic/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/vet-clinic/internal/usecase/appointment"
	ucPet "github.com/BruksfildServices01/vet-clinic/internal/usecase/pet"
	ucUser "github.com/BruksfildServices01/vet-clinic/internal/usecase/user"
)

// Dependencies are the process-wide handles the routes are built from.
// Photos may be nil when no bucket is configured.
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *logrus.Logger
	Issuer  *auth.TokenIssuer
	Revoker auth.Revoker
	Events  *events.Dispatcher
	Photos  photos.Store
}

// NewRouter returns an engine with the global middleware and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	log := deps.Log

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(deps.DB)
	petRepo := infraRepo.NewPetGormRepository(deps.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucUser.NewRegister(userRepo, cfg.CheckEmailDomain)
	loginUC := ucUser.NewLogin(userRepo)
	profileUC := ucUser.NewGetProfile(userRepo)

	createPetUC := ucPet.NewCreatePet(petRepo)
	listPetsUC := ucPet.NewListPets(petRepo)
	deletePetUC := ucPet.NewDeletePet(petRepo)
	uploadPhotoUC := ucPet.NewUploadPetPhoto(petRepo, deps.Photos)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		deps.Events,
		timezone.Location(cfg.Timezone),
	)
	listMyAppointmentsUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, deps.Events)
	listAllAppointmentsUC := ucAppointment.NewListAllAppointments(appointmentRepo)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, deps.Events)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC,
		loginUC,
		deps.Issuer,
		deps.Revoker,
		cfg.CookieSecure,
		log,
	)
	meHandler := handlers.NewMeHandler(profileUC, log)
	petHandler := handlers.NewPetHandler(createPetUC, listPetsUC, deletePetUC, uploadPhotoUC, log)
	vetHandler := handlers.NewVetHandler(deps.DB, log)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listMyAppointmentsUC,
		cancelAppointmentUC,
		log,
	)
	adminHandler := handlers.NewAdminHandler(listAllAppointmentsUC, updateStatusUC, log)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/vets", vetHandler.List)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.Issuer, deps.Revoker, log))
		{
			secured.GET("/profile", meHandler.Profile)
			secured.GET("/check-auth", meHandler.CheckAuth)

			secured.GET("/pets", petHandler.List)
			secured.POST("/pets", petHandler.Create)
			secured.DELETE("/pets/:id", petHandler.Delete)
			secured.POST("/pets/:id/photo", petHandler.UploadPhoto)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/appointments", adminHandler.ListAppointments)
				admin.PATCH("/appointments/:id/status", adminHandler.UpdateStatus)
			}
		}
	}
}
