package services

import (
	"testing"
	"time"

	"backend/models"
)

func TestUpsertDevice(t *testing.T) {
	db := openTestDB(t)
	svc := &PushService{db: db}

	dev := &models.UserDevice{
		UserID:      1,
		Platform:    "android",
		TokenHash:   "hash-1",
		EndpointARN: "arn:aws:sns:endpoint/1",
		Enabled:     true,
		UpdatedAt:   time.Now(),
	}

	stored, err := svc.upsertDevice(dev)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if stored.EndpointARN != "arn:aws:sns:endpoint/1" {
		t.Errorf("endpoint = %q", stored.EndpointARN)
	}

	// same (user, token hash) re-registers in place with the new endpoint
	updated, err := svc.upsertDevice(&models.UserDevice{
		UserID:      1,
		Platform:    "android",
		TokenHash:   "hash-1",
		EndpointARN: "arn:aws:sns:endpoint/2",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != stored.ID {
		t.Errorf("device duplicated: %d vs %d", updated.ID, stored.ID)
	}
	if updated.EndpointARN != "arn:aws:sns:endpoint/2" {
		t.Errorf("endpoint not refreshed: %q", updated.EndpointARN)
	}

	var count int64
	db.Model(&models.UserDevice{}).Where("user_id = ?", 1).Count(&count)
	if count != 1 {
		t.Errorf("devices = %d, want 1", count)
	}
}

func TestUpsertDeviceSurfacesStoreErrors(t *testing.T) {
	db := openTestDB(t)
	svc := &PushService{db: db}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.Close()

	if _, err := svc.upsertDevice(&models.UserDevice{UserID: 1, TokenHash: "hash-1"}); err == nil {
		t.Error("expected error after the store is gone")
	}
}

func TestSetEnabled(t *testing.T) {
	db := openTestDB(t)
	svc := &PushService{db: db}

	for _, hash := range []string{"h1", "h2"} {
		if _, err := svc.upsertDevice(&models.UserDevice{UserID: 1, Platform: "android", TokenHash: hash, Enabled: true}); err != nil {
			t.Fatalf("seed device: %v", err)
		}
	}

	if err := svc.SetEnabled(1, false); err != nil {
		t.Fatalf("disable: %v", err)
	}

	var enabled int64
	db.Model(&models.UserDevice{}).Where("user_id = ? AND enabled = ?", 1, true).Count(&enabled)
	if enabled != 0 {
		t.Errorf("enabled devices = %d, want 0", enabled)
	}
}
