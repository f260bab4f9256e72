package analytics_test

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/NELLYMURIELLE/ecosens/models"
	"github.com/NELLYMURIELLE/ecosens/services/analytics"
)

// fakeStore is an in-memory analytics.Store used to exercise the
// calculations without a database.
type fakeStore struct {
	user   *models.User
	usages []models.Usage
	alerts []models.Alert

	now       time.Time
	saveCalls int
	nextID    uint
}

func newFakeStore(now time.Time) *fakeStore {
	return &fakeStore{now: now, nextID: 1}
}

func newService(fs *fakeStore) *analytics.Service {
	svc := analytics.NewService(fs)
	svc.Now = func() time.Time { return fs.now }
	return svc
}

func (f *fakeStore) addUsage(userID uint, date time.Time, kwh float64, equipmentName string) {
	f.usages = append(f.usages, models.Usage{
		Model:           gorm.Model{ID: f.nextID},
		UserID:          userID,
		Date:            date,
		ConsommationKWh: kwh,
		Equipment:       models.Equipment{Name: equipmentName},
	})
	f.nextID++
}

func (f *fakeStore) UserByID(id uint) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, nil
	}
	u := *f.user
	return &u, nil
}

func (f *fakeStore) UsagesByUser(userID uint) ([]models.Usage, error) {
	var out []models.Usage
	for _, u := range f.usages {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) UsagesByUserSince(userID uint, since time.Time) ([]models.Usage, error) {
	var out []models.Usage
	for _, u := range f.usages {
		if u.UserID == userID && !u.Date.Before(since) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) UsagesByUserBetween(userID uint, from, to time.Time) ([]models.Usage, error) {
	var out []models.Usage
	for _, u := range f.usages {
		if u.UserID == userID && !u.Date.Before(from) && !u.Date.After(to) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) HasUnreadWarningSince(userID uint, since time.Time) (bool, error) {
	for _, a := range f.alerts {
		if a.UserID == userID && a.AlertType == models.AlertTypeWarning &&
			!a.IsRead && !a.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateAlert(alert *models.Alert) error {
	alert.ID = f.nextID
	f.nextID++
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = f.now
	}
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeStore) UnreadAlerts(userID uint, limit int) ([]models.Alert, error) {
	var out []models.Alert
	for _, a := range f.alerts {
		if a.UserID == userID && !a.IsRead {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) AlertByID(id uint) (*models.Alert, error) {
	for i := range f.alerts {
		if f.alerts[i].ID == id {
			a := f.alerts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SaveAlert(alert *models.Alert) error {
	f.saveCalls++
	for i := range f.alerts {
		if f.alerts[i].ID == alert.ID {
			f.alerts[i] = *alert
			return nil
		}
	}
	return nil
}
