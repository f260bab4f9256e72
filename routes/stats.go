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

// StatsHandler expose les statistiques et les séries de graphiques.
type StatsHandler struct {
	svc *analytics.Service
}

func SetupStatsRoutes(app *fiber.App, svc *analytics.Service) {
	h := &StatsHandler{svc: svc}
	app.Get("/statistics", middleware.JWTMiddleware, h.statistics)
}

func (h *StatsHandler) statistics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var totalUsages int64
	database.DB.Model(&models.Usage{}).Where("user_id = ?", userID).Count(&totalUsages)

	var allUsages []models.Usage
	database.DB.Where("user_id = ?", userID).Find(&allUsages)
	var totalConsommation float64
	for _, u := range allUsages {
		totalConsommation += u.ConsommationKWh
	}

	// Semaine en cours, depuis lundi
	today := time.Now()
	offset := (int(today.Weekday()) + 6) % 7
	weekStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()).
		AddDate(0, 0, -offset)

	var weekUsages []models.Usage
	database.DB.Where("user_id = ? AND date >= ?", userID, weekStart).Find(&weekUsages)
	var weekTotal float64
	for _, u := range weekUsages {
		weekTotal += u.ConsommationKWh
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	var monthUsages []models.Usage
	database.DB.Where("user_id = ? AND date >= ?", userID, monthStart).Find(&monthUsages)
	var monthTotal float64
	for _, u := range monthUsages {
		monthTotal += u.ConsommationKWh
	}

	weeklyData, err := h.svc.WeeklyData(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur calcul hebdomadaire"})
	}
	monthlyData, err := h.svc.MonthlyData(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur calcul mensuel"})
	}
	equipmentData, err := h.svc.EquipmentBreakdown(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur répartition équipements"})
	}

	return c.JSON(fiber.Map{
		"total_usages":        totalUsages,
		"total_consommation":  math.Round(totalConsommation*100) / 100,
		"week_total":          math.Round(weekTotal*100) / 100,
		"month_total":         math.Round(monthTotal*100) / 100,
		"weekly_data":         weeklyData,
		"monthly_data":        monthlyData,
		"equipment_breakdown": equipmentData,
	})
}
