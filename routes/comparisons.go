package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/services/analytics"
)

// ComparisonHandler expose la comparaison mensuelle et ses statistiques.
type ComparisonHandler struct {
	svc *analytics.Service
}

func SetupComparisonRoutes(app *fiber.App, svc *analytics.Service) {
	h := &ComparisonHandler{svc: svc}
	app.Get("/comparisons", middleware.JWTMiddleware, h.comparisons)
}

func (h *ComparisonHandler) comparisons(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	monthlyData, err := h.svc.MonthlyComparison(userID, 6)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur comparaison mensuelle"})
	}

	stats, err := h.svc.GetComparisonStats(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur statistiques de comparaison"})
	}

	return c.JSON(fiber.Map{
		"monthly_data": monthlyData,
		"stats":        stats,
	})
}
