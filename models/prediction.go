package models

import (
	"time"

	"gorm.io/gorm"
)

// Prediction est déclarée dans le schéma mais aucun chemin de code ne la
// renseigne pour l'instant : les prévisions sont recalculées à la demande.
type Prediction struct {
	gorm.Model
	UserID             uint      `json:"user_id"`
	Date               time.Time `json:"date"`
	ConsommationPrevue float64   `json:"consommation_prevue"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
