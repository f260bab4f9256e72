package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AlertTypeWarning = "warning"
	AlertTypeDanger  = "danger"
	AlertTypeInfo    = "info"
)

type Alert struct {
	gorm.Model
	UserID    uint              `json:"user_id"`
	Message   string            `gorm:"size:255" json:"message"`
	AlertType string            `gorm:"size:50" json:"alert_type"`
	IsRead    bool              `json:"is_read"`
	Metadata  datatypes.JSONMap `json:"metadata"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
