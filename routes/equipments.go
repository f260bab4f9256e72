package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/database"
	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/models"
)

func SetupEquipmentRoutes(app *fiber.App) {
	equipments := app.Group("/equipments", middleware.JWTMiddleware)
	equipments.Get("/", listEquipments)
	equipments.Post("/", addEquipment)
	equipments.Put("/:id", editEquipment)
	equipments.Delete("/:id", deleteEquipment)
}

type equipmentPayload struct {
	Name           string  `json:"name"`
	PuissanceWatts float64 `json:"puissance_watts"`
	Category       string  `json:"category"`
}

func listEquipments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var equipments []models.Equipment
	database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&equipments)

	return c.JSON(fiber.Map{"equipments": equipments})
}

func addEquipment(c *fiber.Ctx) error {
	var body equipmentPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	if body.Name == "" || body.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tous les champs sont obligatoires"})
	}
	if body.PuissanceWatts <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La puissance doit être positive"})
	}

	equipment := models.Equipment{
		UserID:         c.Locals("user_id").(uint),
		Name:           body.Name,
		PuissanceWatts: body.PuissanceWatts,
		Category:       body.Category,
	}

	if err := database.DB.Create(&equipment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur création équipement"})
	}

	return c.Status(fiber.StatusCreated).JSON(equipment)
}

func editEquipment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var equipment models.Equipment
	database.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&equipment)
	if equipment.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Équipement introuvable"})
	}

	var body equipmentPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}
	if body.PuissanceWatts <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "La puissance doit être positive"})
	}

	equipment.Name = body.Name
	equipment.PuissanceWatts = body.PuissanceWatts
	equipment.Category = body.Category
	database.DB.Save(&equipment)

	return c.JSON(equipment)
}

// deleteEquipment supprime aussi les utilisations liées : le store ne fait
// pas de cascade, la suppression doit être explicite.
func deleteEquipment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var equipment models.Equipment
	database.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&equipment)
	if equipment.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Équipement introuvable"})
	}

	database.DB.Where("equipment_id = ?", equipment.ID).Delete(&models.Usage{})
	database.DB.Delete(&equipment)

	return c.JSON(fiber.Map{"message": "Équipement \"" + equipment.Name + "\" supprimé"})
}
