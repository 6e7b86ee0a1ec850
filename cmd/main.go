package main

import (
	"log"
	"os"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
)

func main() {
	db := config.ConnectDB()

	catalog := services.NewCatalog()

	var generator services.PlanGenerator
	if os.Getenv("GEMINI_API_KEY") != "" {
		generator = services.NewGeminiService()
	} else {
		log.Println("GEMINI_API_KEY not set, plans use templates only")
	}

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}

	moderation, err := services.NewModerationService()
	if err != nil {
		log.Printf("photo moderation disabled: %v", err)
		moderation = nil
	}

	authSvc := services.NewAuthService(db)
	planSvc := services.NewPlanService(db, catalog, generator)
	onboardingSvc := services.NewOnboardingService(db, planSvc)
	progressSvc := services.NewProgressService(db)
	taskSvc := services.NewTaskService(db, planSvc, progressSvc, hub, push)

	ctrls := routes.Controllers{
		Auth:       controllers.NewAuthController(authSvc),
		Onboarding: controllers.NewOnboardingController(onboardingSvc),
		Plans:      controllers.NewPlanController(planSvc),
		Tasks:      controllers.NewTaskController(taskSvc),
		Progress:   controllers.NewProgressController(progressSvc),
		Profile:    controllers.NewProfileController(onboardingSvc, authSvc, moderation),
		Realtime:   controllers.NewRealtimeController(hub),
	}
	if push != nil {
		ctrls.Devices = controllers.NewDeviceController(push)
	}

	r := routes.SetupRouter(ctrls)
	r.Run(":8080")
}
