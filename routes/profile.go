package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/database"
	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/models"
	"github.com/NELLYMURIELLE/ecosens/utils"
)

func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.JWTMiddleware)
	profile.Get("/", getProfile)
	profile.Put("/", updateProfile)
	profile.Put("/password", changePassword)

	settings := app.Group("/settings", middleware.JWTMiddleware)
	settings.Get("/", getSettings)
	settings.Put("/", updateSettings)
}

func getProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	return c.JSON(user)
}

type profilePayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func updateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body profilePayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	var existing models.User
	database.DB.Where("id <> ? AND (username = ? OR email = ?)", userID, body.Username, body.Email).First(&existing)
	if existing.ID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Ce nom d'utilisateur ou email est déjà utilisé"})
	}

	user.Username = body.Username
	user.Email = body.Email
	database.DB.Save(&user)

	return c.JSON(fiber.Map{"message": "Informations mises à jour"})
}

type passwordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func changePassword(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body passwordPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	if !utils.CheckPassword(user.Password, body.CurrentPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mot de passe actuel incorrect"})
	}
	if body.NewPassword != body.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Les nouveaux mots de passe ne correspondent pas"})
	}
	if len(body.NewPassword) < 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Le mot de passe doit contenir au moins 4 caractères"})
	}

	hash, err := utils.HashPassword(body.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de hasher le mot de passe"})
	}

	user.Password = hash
	database.DB.Save(&user)

	return c.JSON(fiber.Map{"message": "Mot de passe changé avec succès"})
}

type settingsPayload struct {
	AlertThreshold float64 `json:"alert_threshold"`
	DailyGoal      float64 `json:"daily_goal"`
}

func getSettings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	return c.JSON(fiber.Map{
		"alert_threshold": user.AlertThreshold,
		"daily_goal":      user.DailyGoal,
	})
}

func updateSettings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body settingsPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	if body.AlertThreshold <= 0 {
		body.AlertThreshold = 10
	}
	if body.DailyGoal <= 0 {
		body.DailyGoal = 5
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	user.AlertThreshold = body.AlertThreshold
	user.DailyGoal = body.DailyGoal
	database.DB.Save(&user)

	return c.JSON(fiber.Map{"message": "Paramètres enregistrés"})
}
