package analytics_test

import (
	"testing"
	"time"
)

func TestComparisonStatsZeroPreviousMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	svc := newService(fs)

	// Consumption this month only
	fs.addUsage(1, time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC), 30.0, "Chauffage")

	stats, err := svc.GetComparisonStats(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.CurrentMonth != 30.0 {
		t.Errorf("expected current month 30.0, got %v", stats.CurrentMonth)
	}
	if stats.LastMonth != 0 {
		t.Errorf("expected empty previous month, got %v", stats.LastMonth)
	}
	// Division guarded: 0%, not an error
	if stats.Difference != 0 {
		t.Errorf("expected difference 0 with empty previous month, got %v", stats.Difference)
	}
	if stats.Trend != "stable" {
		t.Errorf("expected stable trend, got %s", stats.Trend)
	}
	if stats.AverageMonthly != 5.0 {
		t.Errorf("expected 30/6 monthly average, got %v", stats.AverageMonthly)
	}
}

func TestComparisonStatsTrend(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	svc := newService(fs)

	fs.addUsage(1, time.Date(2025, 5, 10, 10, 0, 0, 0, time.UTC), 20.0, "Four")
	fs.addUsage(1, time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC), 30.0, "Four")

	stats, err := svc.GetComparisonStats(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.LastMonth != 20.0 {
		t.Errorf("expected last month 20.0, got %v", stats.LastMonth)
	}
	if stats.Difference != 50.0 {
		t.Errorf("expected +50%% difference, got %v", stats.Difference)
	}
	if stats.Trend != "up" {
		t.Errorf("expected up trend, got %s", stats.Trend)
	}
}

func TestComparisonStatsDownTrend(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	svc := newService(fs)

	fs.addUsage(1, time.Date(2025, 5, 10, 10, 0, 0, 0, time.UTC), 40.0, "Four")
	fs.addUsage(1, time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC), 30.0, "Four")

	stats, err := svc.GetComparisonStats(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Difference != -25.0 {
		t.Errorf("expected -25%% difference, got %v", stats.Difference)
	}
	if stats.Trend != "down" {
		t.Errorf("expected down trend, got %s", stats.Trend)
	}
}

func TestMonthlyComparisonSeries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	fs := newFakeStore(now)
	svc := newService(fs)

	fs.addUsage(1, time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC), 30.0, "Chauffage")
	fs.addUsage(1, time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC), 12.0, "Chauffage")

	data, err := svc.MonthlyComparison(1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(data))
	}

	// Oldest to newest, ending on the current month
	last := data[5]
	if last.MonthShort != "Jun 2025" {
		t.Errorf("expected series to end on Jun 2025, got %s", last.MonthShort)
	}
	if last.Consommation != 30.0 {
		t.Errorf("expected 30.0 kWh in June, got %v", last.Consommation)
	}
	if last.Cout != 4500 {
		t.Errorf("expected cost 30*150=4500, got %v", last.Cout)
	}

	april := data[3]
	if april.MonthShort != "Apr 2025" {
		t.Errorf("expected Apr 2025 at index 3, got %s", april.MonthShort)
	}
	if april.Consommation != 12.0 || april.Cout != 1800 {
		t.Errorf("unexpected April entry: %+v", april)
	}

	for _, e := range []int{0, 1, 2, 4} {
		if data[e].Consommation != 0 {
			t.Errorf("expected empty month at index %d, got %v", e, data[e].Consommation)
		}
	}
}
