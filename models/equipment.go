package models

import "gorm.io/gorm"

const (
	CategoryElectromenager = "electromenager"
	CategoryChauffage      = "chauffage"
	CategoryMultimedia     = "multimedia"
	CategoryEclairage      = "eclairage"
	CategoryAutre          = "autre"
)

type Equipment struct {
	gorm.Model
	UserID         uint    `json:"user_id"`
	Name           string  `gorm:"size:100" json:"name"`
	PuissanceWatts float64 `json:"puissance_watts"`
	Category       string  `gorm:"size:50" json:"category"`

	User   User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Usages []Usage `json:"-"`
}
