package models

import (
	"time"

	"gorm.io/gorm"
)

type Usage struct {
	gorm.Model
	UserID          uint      `json:"user_id"`
	EquipmentID     uint      `json:"equipment_id"`
	Date            time.Time `json:"date"`
	DureeHeures     float64   `json:"duree_heures"`
	ConsommationKWh float64   `json:"consommation_kwh"`

	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Equipment Equipment `json:"equipment"`
}

// ComputeKWh calcule l'énergie consommée à partir de la puissance nominale.
func ComputeKWh(puissanceWatts, dureeHeures float64) float64 {
	return puissanceWatts * dureeHeures / 1000
}
