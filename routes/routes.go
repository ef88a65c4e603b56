package routes

import (
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/alerta-golpe/api-go/middleware"
	"github.com/alerta-golpe/api-go/services"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies carries the services the HTTP layer is built on.
type Dependencies struct {
	Auth         *services.AuthService
	Users        *services.UserService
	Comments     *services.CommentService
	Scams        *services.ScamService
	Categories   *services.CategoryService
	Domains      *services.DomainService
	Uploads      *services.UploadService
	Admin        *services.AdminService
	HealthChecks map[string]controllers.HealthCheck
	Log          *logrus.Logger
}

func SetupRoutes(r *gin.Engine, deps Dependencies) {
	utils.RegisterValidators()

	// Initialize controllers
	authController := controllers.NewAuthController(deps.Auth, deps.Users, deps.Log)
	userController := controllers.NewUserController(deps.Users, deps.Log)
	commentController := controllers.NewCommentController(deps.Comments, deps.Log)
	scamController := controllers.NewScamController(deps.Scams, deps.Log)
	categoryController := controllers.NewCategoryController(deps.Categories, deps.Log)
	domainController := controllers.NewDomainController(deps.Domains, deps.Log)
	uploadController := controllers.NewUploadController(deps.Uploads, deps.Log)
	adminController := controllers.NewAdminController(deps.Admin, deps.Log)
	healthController := controllers.NewHealthController(deps.HealthChecks, deps.Log)

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/health", healthController.Health)
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)

		SetupCategoryRoutes(public, categoryController)
		SetupDomainRoutes(public, domainController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(deps.Auth))
	{
		protected.GET("/profile", authController.GetProfile)

		SetupInteractionRoutes(protected, scamController)
		SetupUploadRoutes(protected, uploadController)
	}

	SetupScamRoutes(public, protected, scamController, commentController)
	SetupCommentRoutes(public, protected, commentController)
	SetupUserRoutes(public, protected, userController)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	SetupAdminRoutes(admin, adminController)
}
