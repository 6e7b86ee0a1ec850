package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fixed due times for the non-meal tasks of a day.
const (
	workoutDueTime = "18:00"
	waterDueTime   = "20:00"
)

type TaskService struct {
	db       *gorm.DB
	plans    *PlanService
	progress *ProgressService
	hub      *RealtimeHub // optional
	push     *PushService // optional
}

func NewTaskService(db *gorm.DB, plans *PlanService, progress *ProgressService, hub *RealtimeHub, push *PushService) *TaskService {
	return &TaskService{db: db, plans: plans, progress: progress, hub: hub, push: push}
}

// DeriveTasks expands a plan into its checklist: one task per meal, one
// workout task at 18:00 regardless of the preferred workout time, one water
// task at 20:00, and one sleep task at bed time.
func DeriveTasks(plan *models.DailyPlan) []models.Task {
	tasks := make([]models.Task, 0, len(plan.Meals)+3)

	for _, meal := range plan.Meals {
		tasks = append(tasks, models.Task{
			ID:     uuid.NewString(),
			UserID: plan.UserID,
			Date:   plan.Date,
			Type:   "meal",
			Title:  fmt.Sprintf("%s (%d kcal)", meal.Name, int(meal.Calories)),
			DueAt:  dueAt(plan.Date, meal.Time),
		})
	}

	tasks = append(tasks, models.Task{
		ID:     uuid.NewString(),
		UserID: plan.UserID,
		Date:   plan.Date,
		Type:   "workout",
		Title:  fmt.Sprintf("%s Workout (%d min)", titleCase(plan.Workout.Type), plan.Workout.DurationMinutes),
		DueAt:  dueAt(plan.Date, workoutDueTime),
	})

	tasks = append(tasks, models.Task{
		ID:     uuid.NewString(),
		UserID: plan.UserID,
		Date:   plan.Date,
		Type:   "water",
		Title:  fmt.Sprintf("Drink %dml water", int(plan.WaterGoalML)),
		DueAt:  dueAt(plan.Date, waterDueTime),
	})

	tasks = append(tasks, models.Task{
		ID:     uuid.NewString(),
		UserID: plan.UserID,
		Date:   plan.Date,
		Type:   "sleep",
		Title:  fmt.Sprintf("Sleep by %s", plan.SleepWindow.Start),
		DueAt:  dueAt(plan.Date, plan.SleepWindow.Start),
	})

	return tasks
}

func dueAt(date, hhmm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, time.Local)
	if err != nil {
		// Plans only carry validated HH:MM strings; an unparsable time would
		// mean corrupted data, so pin the task to day start rather than drop it.
		t, _ = time.ParseInLocation("2006-01-02", date, time.Local)
	}
	return t
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// GetOrCreateTasks returns the stored tasks for (user, date), deriving them
// from the day's plan on first call. Without a plan there is nothing to
// derive and an empty list is returned.
func (s *TaskService) GetOrCreateTasks(userID uint, date string) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).
		Order("due_at asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) > 0 {
		return tasks, nil
	}

	plan, err := s.plans.GetPlan(userID, date)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Task{}, nil
		}
		return nil, err
	}

	tasks = DeriveTasks(plan)
	if err := s.db.Create(&tasks).Error; err != nil {
		// Unique (user_id, date, title) index: another request derived the
		// set first. Return the stored tasks.
		var stored []models.Task
		if getErr := s.db.Where("user_id = ? AND date = ?", userID, date).
			Order("due_at asc").Find(&stored).Error; getErr == nil && len(stored) > 0 {
			return stored, nil
		}
		return nil, err
	}
	return tasks, nil
}

// SetCompletion toggles a task's completed flag. Completing a task folds it
// into the day's progress record and fans the update out to websocket
// clients and push devices; un-completing only clears the flag.
func (s *TaskService) SetCompletion(userID uint, taskID string, completed bool) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}
	if err != nil {
		return nil, err
	}

	task.Completed = completed
	if completed {
		now := time.Now().UTC()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}

	if completed {
		record, err := s.progress.OnTaskCompleted(&task)
		if err != nil {
			return nil, err
		}
		s.notify(&task, record)
	}
	return &task, nil
}

func (s *TaskService) notify(task *models.Task, record *models.ProgressRecord) {
	if s.hub != nil {
		s.hub.Broadcast(task.UserID, "task.completed", map[string]any{
			"task":     task,
			"progress": record,
		})
	}
	if s.push != nil {
		s.push.PushToUser(task.UserID, "Task completed", task.Title, map[string]string{
			"taskId": task.ID,
			"type":   task.Type,
		})
	}
}
