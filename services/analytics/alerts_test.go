package analytics_test

import (
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/NELLYMURIELLE/ecosens/models"
)

func TestCheckDailyConsumptionAlertCreatesOnce(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	fs.user = &models.User{Model: gorm.Model{ID: 1}, AlertThreshold: 10.0}
	svc := newService(fs)

	fs.addUsage(1, now.Add(-4*time.Hour), 7.5, "Chauffage")
	fs.addUsage(1, now.Add(-1*time.Hour), 5.0, "Four")

	created, err := svc.CheckDailyConsumptionAlert(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected an alert for 12.5 kWh over a 10.0 threshold")
	}
	if len(fs.alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(fs.alerts))
	}

	alert := fs.alerts[0]
	if alert.AlertType != models.AlertTypeWarning {
		t.Errorf("expected warning type, got %s", alert.AlertType)
	}
	if !strings.Contains(alert.Message, "12.50") || !strings.Contains(alert.Message, "10") {
		t.Errorf("message should embed total and threshold, got %q", alert.Message)
	}
	if alert.Metadata["total_kwh"] != 12.5 {
		t.Errorf("expected metadata total 12.5, got %v", alert.Metadata["total_kwh"])
	}

	// A second overage the same day stays silent
	fs.addUsage(1, now, 3.0, "Four")
	created, err = svc.CheckDailyConsumptionAlert(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected no duplicate alert on the same day")
	}
	if len(fs.alerts) != 1 {
		t.Errorf("expected still one alert, got %d", len(fs.alerts))
	}
}

func TestCheckDailyConsumptionAlertBelowThreshold(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	fs.user = &models.User{Model: gorm.Model{ID: 1}, AlertThreshold: 10.0}
	svc := newService(fs)

	fs.addUsage(1, now, 9.9, "Chauffage")

	created, err := svc.CheckDailyConsumptionAlert(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created || len(fs.alerts) != 0 {
		t.Error("no alert expected below the threshold")
	}
}

func TestCheckDailyConsumptionAlertIgnoresOtherDays(t *testing.T) {
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	fs.user = &models.User{Model: gorm.Model{ID: 1}, AlertThreshold: 10.0}
	svc := newService(fs)

	// Yesterday's big total does not count toward today
	fs.addUsage(1, now.AddDate(0, 0, -1), 25.0, "Chauffage")
	fs.addUsage(1, now, 2.0, "Four")

	created, err := svc.CheckDailyConsumptionAlert(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("yesterday's consumption must not trigger today's alert")
	}
}

func TestUserAlertsLimitAndOrder(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	svc := newService(fs)

	for i := 0; i < 7; i++ {
		fs.alerts = append(fs.alerts, models.Alert{
			Model:     gorm.Model{ID: uint(i + 1), CreatedAt: now.Add(time.Duration(i) * time.Minute)},
			UserID:    1,
			Message:   "alerte",
			AlertType: models.AlertTypeWarning,
		})
	}
	// Read alerts are excluded
	fs.alerts[3].IsRead = true

	alerts, err := svc.UserAlerts(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 5 {
		t.Fatalf("expected 5 unread alerts, got %d", len(alerts))
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i].CreatedAt.After(alerts[i-1].CreatedAt) {
			t.Error("alerts must be ordered newest first")
		}
	}
	if alerts[0].ID != 7 {
		t.Errorf("expected newest alert first, got id %d", alerts[0].ID)
	}
}

func TestMarkAlertReadIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	svc := newService(fs)

	fs.alerts = append(fs.alerts, models.Alert{
		Model:  gorm.Model{ID: 42, CreatedAt: now},
		UserID: 1,
	})

	if err := svc.MarkAlertRead(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fs.alerts[0].IsRead {
		t.Error("expected alert marked as read")
	}
	if fs.saveCalls != 1 {
		t.Errorf("expected one save, got %d", fs.saveCalls)
	}

	// Already read: no new write
	if err := svc.MarkAlertRead(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.saveCalls != 1 {
		t.Errorf("marking a read alert must be a no-op, got %d saves", fs.saveCalls)
	}

	// Nonexistent: no write, no error
	if err := svc.MarkAlertRead(999); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.saveCalls != 1 {
		t.Errorf("marking a missing alert must be a no-op, got %d saves", fs.saveCalls)
	}
}
