package analytics

import (
	"math"
	"time"

	"github.com/NELLYMURIELLE/ecosens/models"
)

// Store est le contrat d'accès aux données dont les calculs ont besoin.
// Les handlers injectent l'implémentation GORM ; les tests une version mémoire.
type Store interface {
	UserByID(id uint) (*models.User, error)

	// UsagesByUser retourne tout l'historique, équipement préchargé.
	UsagesByUser(userID uint) ([]models.Usage, error)
	UsagesByUserSince(userID uint, since time.Time) ([]models.Usage, error)
	UsagesByUserBetween(userID uint, from, to time.Time) ([]models.Usage, error)

	HasUnreadWarningSince(userID uint, since time.Time) (bool, error)
	CreateAlert(alert *models.Alert) error
	UnreadAlerts(userID uint, limit int) ([]models.Alert, error)
	AlertByID(id uint) (*models.Alert, error)
	SaveAlert(alert *models.Alert) error
}

// Service regroupe les calculs de consommation (agrégats, prévisions,
// alertes, comparaisons). Now est remplaçable dans les tests.
type Service struct {
	store Store
	Now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, Now: time.Now}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
