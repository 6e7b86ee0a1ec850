package controllers

import (
	"fmt"
	"log"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Onboarding *services.OnboardingService
	Auth       *services.AuthService
	Moderation *services.ModerationService // optional
}

func NewProfileController(ob *services.OnboardingService, auth *services.AuthService, mod *services.ModerationService) *ProfileController {
	return &ProfileController{Onboarding: ob, Auth: auth, Moderation: mod}
}

// Get returns the computed profile along with the derived BMI category.
func (pc *ProfileController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := pc.Onboarding.GetProfile(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"bmi_category": utils.BMICategory(profile.BMI),
	})
}

type PhotoInput struct {
	Image string `json:"image" binding:"required"` // base64 data URI
}

// UploadPhoto screens the image and stores it. Moderation failures let the
// photo through; only flagged content is rejected.
func (pc *ProfileController) UploadPhoto(c *gin.Context) {
	uid := c.GetUint("userID")

	var input PhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if pc.Moderation != nil {
		labels, err := pc.Moderation.CheckImage(c.Request.Context(), input.Image)
		if err != nil {
			log.Printf("photo moderation unavailable for user %d: %v", uid, err)
		} else if len(labels) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "image rejected by moderation",
				"labels": labels,
			})
			return
		}
	}

	url, err := utils.UploadBase64ImageToS3(input.Image, fmt.Sprintf("user-%d", uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	if err := pc.Auth.UpdatePhotoURL(uid, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
