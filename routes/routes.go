package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Onboarding *controllers.OnboardingController
	Plans      *controllers.PlanController
	Tasks      *controllers.TaskController
	Progress   *controllers.ProgressController
	Profile    *controllers.ProfileController
	Devices    *controllers.DeviceController
	Realtime   *controllers.RealtimeController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/forgot-password", c.Auth.ForgotPassword)
		auth.POST("/reset-password", c.Auth.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/auth/me", c.Auth.Me)

		protected.POST("/onboarding", c.Onboarding.Complete)
		protected.GET("/onboarding/status", c.Onboarding.Status)

		protected.GET("/plans/today", c.Plans.Today)
		protected.GET("/plans/:date", c.Plans.ByDate)

		protected.GET("/tasks/today", c.Tasks.Today)
		protected.PUT("/tasks/:id", c.Tasks.Update)

		protected.GET("/progress/summary", c.Progress.Summary)

		protected.GET("/profile", c.Profile.Get)
		protected.POST("/profile/photo", c.Profile.UploadPhoto)

		if c.Devices != nil {
			protected.POST("/devices/register", c.Devices.Register)
			protected.POST("/notifications/toggle", c.Devices.ToggleNotifications)
		}

		protected.GET("/ws/events", c.Realtime.EventsWS)
	}

	return r
}
