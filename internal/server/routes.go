package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/auth"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/controller/activity"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/controller/importrun"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/controller/job"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/controller/technology"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/controller/user"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/middleware"

	// Init swagger doc
	_ "github.com/ErwanMettouchi/DevJobHub-backend/docs"
)

// RegisterRoutes will register each http endpoint routes to bound MyServer instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()

	lAuth := auth.NewLocalAuthHandler(s.DB, s.JWT, s.Log)
	logout := auth.NewLogoutController(s.Blacklist, s.Log)
	jobController := job.NewJobController(s.Jobs)
	techController := technology.NewTechnologyController(s.DB)
	activityController := activity.NewActivityController(s.DB)
	importRunController := importrun.NewImportRunController(s.Jobs)
	userController := user.NewUserController(s.DB)

	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(s.Log),
		cors.New(s.corsConfig()),
		middleware.SafeHeader("/swagger/"),
		middleware.SizeLimit(middleware.DefaultMaxBodyBytes),
	)

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.Use(middleware.RateLimiterMiddleware(s.Config.RateLimitPerSecond, s.Redis))
			authRoute.POST("login", lAuth.LocalLoginHandler)
			authRoute.POST("register", lAuth.LocalRegisterHandler)
		}

		v1.GET("/jobs", jobController.GetJobs)
		v1.GET("/jobs/:id", jobController.GetJobByID)
		v1.GET("/technologies", techController.GetTechnologies)

		needAuth := v1.Group("")
		{
			needAuth.Use(
				middleware.RequireAuth(s.JWT),
				middleware.JwtBlacklistCheck(s.Blacklist, s.Log),
				middleware.RateLimiterMiddleware(s.Config.RateLimitPerSecond, s.Redis),
			)
			needAuth.POST("/auth/logout", logout.LogoutHandler)
			needAuth.GET("/users/me", userController.GetMe)
			needAuth.GET("/favorites", activityController.GetFavorites)
			needAuth.GET("/viewed-jobs", activityController.GetViewedJobs)
			needAuth.GET("/applications", activityController.GetApplications)
			needAuth.POST("/applications", activityController.CreateApplication)
			needAuth.PATCH("/applications/:id", activityController.UpdateApplication)
			needAuth.POST("/favorites/:job_id", activityController.AddFavorite)
			needAuth.DELETE("/favorites/:job_id", activityController.RemoveFavorite)
			needAuth.PUT("/viewed-jobs/:job_id", activityController.MarkViewed)
			needAuth.GET("/import-runs", importRunController.GetImportRuns)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// corsConfig allows ALLOW_ORIGIN, or every origin without credentials when
// it is not set.
func (s *MyServer) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}
	if len(s.Config.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = s.Config.AllowOrigins
	cfg.AllowCredentials = true
	return cfg
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	stats := s.DB.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
