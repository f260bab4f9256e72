package routes

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/database"
	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/models"
	"github.com/NELLYMURIELLE/ecosens/services/analytics"
)

// HomeHandler construit le tableau de bord : total du jour, dernières
// utilisations, nombre d'équipements, alertes non lues et objectif quotidien.
type HomeHandler struct {
	svc *analytics.Service
}

func SetupHomeRoutes(app *fiber.App, svc *analytics.Service) {
	h := &HomeHandler{svc: svc}
	app.Get("/home", middleware.JWTMiddleware, h.home)
}

func (h *HomeHandler) home(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	var usagesToday []models.Usage
	database.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, dayStart, dayEnd).Find(&usagesToday)

	var totalToday float64
	for _, u := range usagesToday {
		totalToday += u.ConsommationKWh
	}

	var recentUsages []models.Usage
	database.DB.Preload("Equipment").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(5).
		Find(&recentUsages)

	var totalEquipments int64
	database.DB.Model(&models.Equipment{}).Where("user_id = ?", userID).Count(&totalEquipments)

	alerts, err := h.svc.UserAlerts(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur récupération alertes"})
	}

	dailyGoal := user.DailyGoal
	if dailyGoal == 0 {
		dailyGoal = 5.0
	}

	return c.JSON(fiber.Map{
		"total_today":      math.Round(totalToday*100) / 100,
		"recent_usages":    recentUsages,
		"total_equipments": totalEquipments,
		"alerts":           alerts,
		"daily_goal":       dailyGoal,
	})
}
