package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	Onboarding *services.OnboardingService
}

func NewOnboardingController(ob *services.OnboardingService) *OnboardingController {
	return &OnboardingController{Onboarding: ob}
}

// Complete accepts the questionnaire, computes the profile and seeds the
// first plan.
func (oc *OnboardingController) Complete(c *gin.Context) {
	uid := c.GetUint("userID")

	var answers models.OnboardingAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := oc.Onboarding.Complete(c.Request.Context(), uid, answers)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "onboarding complete",
		"profile": profile,
	})
}

func (oc *OnboardingController) Status(c *gin.Context) {
	uid := c.GetUint("userID")

	completed, hasProfile, err := oc.Onboarding.Status(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"completed":   completed,
		"has_profile": hasProfile,
	})
}
