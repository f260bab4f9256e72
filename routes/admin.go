package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NELLYMURIELLE/ecosens/database"
	"github.com/NELLYMURIELLE/ecosens/middleware"
	"github.com/NELLYMURIELLE/ecosens/models"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)
	admin.Get("/users", listUsers)
	admin.Post("/users/:id/approve", approveUser)
	admin.Delete("/users/:id", deleteUser)
}

func listUsers(c *fiber.Ctx) error {
	var pending []models.User
	database.DB.Where("is_approved = ?", false).Find(&pending)

	var approved []models.User
	database.DB.Where("is_approved = ?", true).Find(&approved)

	return c.JSON(fiber.Map{
		"pending_users":  pending,
		"approved_users": approved,
	})
}

func approveUser(c *fiber.Ctx) error {
	var user models.User
	database.DB.First(&user, c.Params("id"))
	if user.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	user.IsApproved = true
	database.DB.Save(&user)

	return c.JSON(fiber.Map{"message": "Utilisateur \"" + user.Username + "\" approuvé"})
}

// deleteUser sert aussi au rejet d'une inscription en attente. Les données
// liées sont supprimées explicitement, le store ne fait pas de cascade.
func deleteUser(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(uint)

	var user models.User
	database.DB.First(&user, c.Params("id"))
	if user.ID == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Utilisateur introuvable"})
	}

	if user.ID == adminID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Impossible de supprimer cet utilisateur"})
	}

	database.DB.Where("user_id = ?", user.ID).Delete(&models.Usage{})
	database.DB.Where("user_id = ?", user.ID).Delete(&models.Equipment{})
	database.DB.Where("user_id = ?", user.ID).Delete(&models.Alert{})
	database.DB.Where("user_id = ?", user.ID).Delete(&models.Prediction{})
	database.DB.Delete(&user)

	return c.JSON(fiber.Map{"message": "Utilisateur \"" + user.Username + "\" supprimé"})
}
