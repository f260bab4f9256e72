package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/NELLYMURIELLE/ecosens/database"
	"github.com/NELLYMURIELLE/ecosens/models"
	"github.com/NELLYMURIELLE/ecosens/utils"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", register)
	auth.Post("/login", login)
}

type registerPayload struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func register(c *fiber.Ctx) error {
	var body registerPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	if body.Username == "" || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tous les champs sont obligatoires"})
	}

	if body.Password != body.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Les mots de passe ne correspondent pas"})
	}

	var existing models.User
	database.DB.Where("username = ? OR email = ?", body.Username, body.Email).First(&existing)
	if existing.ID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nom d'utilisateur ou email déjà utilisé"})
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible de hasher le mot de passe"})
	}

	user := models.User{
		Username:       body.Username,
		Email:          body.Email,
		Password:       hash,
		IsAdmin:        false,
		IsApproved:     false, // en attente de validation par l'administrateur
		AlertThreshold: 10.0,
		DailyGoal:      5.0,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur création utilisateur"})
	}

	return c.JSON(fiber.Map{"message": "Inscription réussie ! En attente de validation par l'administrateur."})
}

func login(c *fiber.Ctx) error {
	var body loginPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}

	var user models.User
	database.DB.Where("username = ?", body.Username).First(&user)
	if user.ID == 0 || !utils.CheckPassword(user.Password, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Identifiants incorrects"})
	}

	if !user.IsApproved {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Votre compte est en attente de validation par l'administrateur"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	t, _ := token.SignedString([]byte(os.Getenv("JWT_SECRET")))

	return c.JSON(fiber.Map{
		"token":    t,
		"username": user.Username,
		"is_admin": user.IsAdmin,
	})
}
