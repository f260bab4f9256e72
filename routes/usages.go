package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/database"
	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/models"
	"github.com/NELLYMURIELLE/ecosens/services/analytics"
)

// UsageHandler regroupe les endpoints de saisie d'utilisation. La création
// déclenche la vérification du seuil de surconsommation.
type UsageHandler struct {
	svc *analytics.Service
}

func SetupUsageRoutes(app *fiber.App, svc *analytics.Service) {
	h := &UsageHandler{svc: svc}
	usages := app.Group("/usages", middleware.JWTMiddleware)
	usages.Get("/", h.listUsages)
	usages.Post("/", h.addUsage)
	usages.Put("/:id", h.editUsage)
	usages.Delete("/:id", h.deleteUsage)
}

type usagePayload struct {
	EquipmentID     uint    `json:"equipment_id"`
	Heures          float64 `json:"heures"`
	Minutes         float64 `json:"minutes"`
	ConsommationKWh float64 `json:"consommation_kwh"` // saisie manuelle, optionnelle
	Date            string  `json:"date"`             // format 2006-01-02T15:04, optionnel
}

const usageDateLayout = "2006-01-02T15:04"

func (h *UsageHandler) listUsages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var usages []models.Usage
	database.DB.Preload("Equipment").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(20).
		Find(&usages)

	return c.JSON(fiber.Map{"usages": usages})
}

func (h *UsageHandler) addUsage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body usagePayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	if body.EquipmentID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sélectionnez un équipement"})
	}

	var equipment models.Equipment
	database.DB.Where("id = ? AND user_id = ?", body.EquipmentID, userID).First(&equipment)
	if equipment.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Équipement introuvable"})
	}

	dureeHeures := body.Heures + body.Minutes/60

	consommation := body.ConsommationKWh
	if consommation <= 0 {
		consommation = models.ComputeKWh(equipment.PuissanceWatts, dureeHeures)
	}
	if consommation < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La consommation ne peut pas être négative"})
	}

	usageDate := time.Now()
	if body.Date != "" {
		parsed, err := time.ParseInLocation(usageDateLayout, body.Date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date invalide"})
		}
		usageDate = parsed
	}

	usage := models.Usage{
		UserID:          userID,
		EquipmentID:     equipment.ID,
		Date:            usageDate,
		DureeHeures:     dureeHeures,
		ConsommationKWh: consommation,
	}

	if err := database.DB.Create(&usage).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur enregistrement"})
	}

	// Vérifier le dépassement de seuil du jour. Le résultat n'est pas
	// exposé au client : l'alerte apparaîtra sur le tableau de bord.
	if _, err := h.svc.CheckDailyConsumptionAlert(userID); err != nil {
		log.Println("Erreur vérification seuil:", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":          "Utilisation enregistrée",
		"consommation_kwh": usage.ConsommationKWh,
	})
}

func (h *UsageHandler) editUsage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var usage models.Usage
	database.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&usage)
	if usage.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisation introuvable"})
	}

	var body usagePayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	if body.ConsommationKWh < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La consommation ne peut pas être négative"})
	}

	usage.DureeHeures = body.Heures + body.Minutes/60
	usage.ConsommationKWh = body.ConsommationKWh
	if body.Date != "" {
		parsed, err := time.ParseInLocation(usageDateLayout, body.Date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date invalide"})
		}
		usage.Date = parsed
	}
	database.DB.Save(&usage)

	return c.JSON(fiber.Map{"message": "Utilisation modifiée"})
}

func (h *UsageHandler) deleteUsage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var usage models.Usage
	database.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&usage)
	if usage.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisation introuvable"})
	}

	database.DB.Delete(&usage)

	return c.JSON(fiber.Map{"message": "Utilisation supprimée"})
}
