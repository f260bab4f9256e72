package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/NELLYMURIELLE/ecosens/config"
	"github.com/NELLYMURIELLE/ecosens/database"
	"github.com/NELLYMURIELLE/ecosens/routes"
	"github.com/NELLYMURIELLE/ecosens/services/analytics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("pas de .env trouvé")
	}

	cfg := config.Load()

	database.ConnectDB(cfg.DatabaseURL)
	database.EnsureAdmin(cfg)

	svc := analytics.NewService(database.NewStore(database.DB))

	app := fiber.New()

	// CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "ecosens-api", "status": "ok"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupHomeRoutes(app, svc)
	routes.SetupEquipmentRoutes(app)
	routes.SetupUsageRoutes(app, svc)
	routes.SetupStatsRoutes(app, svc)
	routes.SetupPredictionRoutes(app, svc)
	routes.SetupComparisonRoutes(app, svc)
	routes.SetupAlertRoutes(app, svc)
	routes.SetupProfileRoutes(app)
	routes.SetupAdminRoutes(app)

	log.Println("🚀 Serveur sur http://localhost:" + cfg.Port)
	log.Fatal(app.Listen(cfg.HTTPAddr()))
}
