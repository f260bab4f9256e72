package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/NELLYMURIELLE/ecosens/models"
)

// Store est l'implémentation GORM du contrat analytics.Store. Le pool de
// connexions de *gorm.DB remplace l'ancienne ouverture de session par appel.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) UsagesByUser(userID uint) ([]models.Usage, error) {
	var usages []models.Usage
	err := s.db.Preload("Equipment").Where("user_id = ?", userID).Find(&usages).Error
	return usages, err
}

func (s *Store) UsagesByUserSince(userID uint, since time.Time) ([]models.Usage, error) {
	var usages []models.Usage
	err := s.db.Where("user_id = ? AND date >= ?", userID, since).Find(&usages).Error
	return usages, err
}

func (s *Store) UsagesByUserBetween(userID uint, from, to time.Time) ([]models.Usage, error) {
	var usages []models.Usage
	err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).Find(&usages).Error
	return usages, err
}

func (s *Store) HasUnreadWarningSince(userID uint, since time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.Alert{}).
		Where("user_id = ? AND alert_type = ? AND is_read = ? AND created_at >= ?",
			userID, models.AlertTypeWarning, false, since).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateAlert(alert *models.Alert) error {
	return s.db.Create(alert).Error
}

func (s *Store) UnreadAlerts(userID uint, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

func (s *Store) AlertByID(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := s.db.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (s *Store) SaveAlert(alert *models.Alert) error {
	return s.db.Save(alert).Error
}
