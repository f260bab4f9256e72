package analytics

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/NELLYMURIELLE/ecosens/models"
)

// CheckDailyConsumptionAlert recalcule le total du jour et crée une alerte
// de surconsommation si le seuil de l'utilisateur est dépassé. Au plus une
// alerte warning non lue par utilisateur et par jour : les dépassements
// suivants du même jour ne créent rien. Retourne true si une alerte a été
// créée.
func (s *Service) CheckDailyConsumptionAlert(userID uint) (bool, error) {
	user, err := s.store.UserByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	now := s.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	usages, err := s.store.UsagesByUserBetween(userID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	var dailyTotal float64
	for _, u := range usages {
		dailyTotal += u.ConsommationKWh
	}

	if dailyTotal <= user.AlertThreshold {
		return false, nil
	}

	exists, err := s.store.HasUnreadWarningSince(userID, dayStart)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	alert := models.Alert{
		UserID: userID,
		Message: fmt.Sprintf("⚠️ Surconsommation détectée : %.2f kWh aujourd'hui (seuil : %g kWh)",
			round2(dailyTotal), user.AlertThreshold),
		AlertType: models.AlertTypeWarning,
		Metadata: datatypes.JSONMap{
			"total_kwh":     round2(dailyTotal),
			"threshold_kwh": user.AlertThreshold,
		},
	}

	if err := s.store.CreateAlert(&alert); err != nil {
		return false, err
	}
	return true, nil
}

// UserAlerts retourne les 5 dernières alertes non lues, la plus récente en
// premier.
func (s *Service) UserAlerts(userID uint) ([]models.Alert, error) {
	return s.store.UnreadAlerts(userID, 5)
}

// MarkAlertRead passe une alerte de non lue à lue. Alerte inexistante ou
// déjà lue : aucune écriture, aucune erreur.
func (s *Service) MarkAlertRead(alertID uint) error {
	alert, err := s.store.AlertByID(alertID)
	if err != nil {
		return err
	}
	if alert == nil || alert.IsRead {
		return nil
	}
	alert.IsRead = true
	return s.store.SaveAlert(alert)
}
