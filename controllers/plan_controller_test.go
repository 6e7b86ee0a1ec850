package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func planTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Profile{}, &models.DailyPlan{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	profile := models.Profile{
		UserID:            1,
		DietType:          "Vegetarian",
		EquipmentAccess:   "None",
		PrimaryGoal:       "Lose weight",
		WakeTime:          "06:30",
		BedTime:           "22:30",
		CaloriesTarget:    2172,
		ProteinG:          140.0,
		CarbsG:            250.8,
		FatG:              66.4,
		HydrationTargetML: 3240,
		StepTarget:        8000,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	plans := services.NewPlanService(db, services.NewCatalog(), nil)
	pc := NewPlanController(plans)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Next()
	})
	r.GET("/plans/today", pc.Today)
	r.GET("/plans/:date", pc.ByDate)
	return r
}

func TestPlanByDateDoesNotSynthesize(t *testing.T) {
	r := planTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/plans/2020-01-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body = %s", w.Code, w.Body.String())
	}

	// a second read must still miss: nothing was persisted
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("repeat status = %d, want 404", w.Code)
	}
}

func TestPlanTodaySynthesizesThenByDateReads(t *testing.T) {
	r := planTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/plans/today", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("today status = %d, body = %s", w.Code, w.Body.String())
	}

	today := time.Now().Format("2006-01-02")
	req = httptest.NewRequest(http.MethodGet, "/plans/"+today, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("by-date status = %d, want 200 after today synthesized", w.Code)
	}
}

func TestPlanByDateRejectsMalformedDate(t *testing.T) {
	r := planTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/plans/not-a-date", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
