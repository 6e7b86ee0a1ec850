package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{Plans: plans}
}

// Today returns the plan for the current date, synthesizing it on first
// request.
func (pc *PlanController) Today(c *gin.Context) {
	uid := c.GetUint("userID")
	date := time.Now().Format("2006-01-02")

	plan, err := pc.Plans.GetOrCreatePlan(c.Request.Context(), uid, date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ByDate returns the stored plan for an explicit YYYY-MM-DD date. Unlike
// Today it never synthesizes; an absent plan is a 404.
func (pc *PlanController) ByDate(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	plan, err := pc.Plans.GetPlan(uid, date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}
