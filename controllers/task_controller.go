package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	Tasks *services.TaskService
}

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{Tasks: tasks}
}

// Today lists the day's checklist, deriving it from the plan on first call.
func (tc *TaskController) Today(c *gin.Context) {
	uid := c.GetUint("userID")
	date := time.Now().Format("2006-01-02")

	tasks, err := tc.Tasks.GetOrCreateTasks(uid, date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

type TaskUpdate struct {
	Completed *bool `json:"completed" binding:"required"`
}

// Update toggles a task's completion state.
func (tc *TaskController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID := c.Param("id")

	var input TaskUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := tc.Tasks.SetCompletion(uid, taskID, *input.Completed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}
