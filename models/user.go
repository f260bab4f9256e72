package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username       string  `gorm:"uniqueIndex;size:80" json:"username"`
	Email          string  `gorm:"uniqueIndex;size:120" json:"email"`
	Password       string  `json:"-"`
	IsAdmin        bool    `json:"is_admin"`
	IsApproved     bool    `json:"is_approved"`
	AlertThreshold float64 `gorm:"default:10" json:"alert_threshold"`
	DailyGoal      float64 `gorm:"default:5" json:"daily_goal"`

	Equipments []Equipment `json:"-"`
	Usages     []Usage     `json:"-"`
	Alerts     []Alert     `json:"-"`
}
