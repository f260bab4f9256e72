package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/services/analytics"
)

// PredictionHandler expose la prévision de la semaine à venir.
type PredictionHandler struct {
	svc *analytics.Service
}

func SetupPredictionRoutes(app *fiber.App, svc *analytics.Service) {
	h := &PredictionHandler{svc: svc}
	app.Get("/predictions", middleware.JWTMiddleware, h.predictions)
}

func (h *PredictionHandler) predictions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	predictions, err := h.svc.PredictNextWeek(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur calcul prévisions"})
	}

	// Données insuffisantes : état affichable, pas une erreur
	if predictions == nil {
		return c.JSON(fiber.Map{
			"predictions": nil,
			"message":     "Pas assez de données pour faire des prédictions (minimum 7 enregistrements)",
		})
	}

	return c.JSON(fiber.Map{"predictions": predictions})
}
