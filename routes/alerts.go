package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/services/analytics"
)

// AlertHandler expose la consultation et l'acquittement des alertes.
type AlertHandler struct {
	svc *analytics.Service
}

func SetupAlertRoutes(app *fiber.App, svc *analytics.Service) {
	h := &AlertHandler{svc: svc}
	alerts := app.Group("/alerts", middleware.JWTMiddleware)
	alerts.Get("/", h.listAlerts)
	alerts.Post("/:id/read", h.markRead)
}

func (h *AlertHandler) listAlerts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	alerts, err := h.svc.UserAlerts(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur récupération alertes"})
	}

	return c.JSON(fiber.Map{"alerts": alerts})
}

// markRead est idempotent : alerte inexistante ou déjà lue, même réponse.
func (h *AlertHandler) markRead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	if err := h.svc.MarkAlertRead(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur mise à jour alerte"})
	}

	return c.JSON(fiber.Map{"message": "Alerte marquée comme lue"})
}
