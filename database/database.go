package database

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NELLYMURIELLE/ecosens/config"
	"github.com/NELLYMURIELLE/ecosens/models"
	"github.com/NELLYMURIELLE/ecosens/utils"
)

var DB *gorm.DB

// ConnectDB ouvre la base (Postgres si DATABASE_URL est fourni, sinon un
// fichier SQLite local) et exécute les migrations.
func ConnectDB(dsn string) {
	var dialector gorm.Dialector

	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	case dsn != "":
		// DSN Postgres supposé même sans préfixe de schéma
		dialector = postgres.Open(dsn)
	default:
		dbPath := "ecosens.db"
		dialector = sqlite.Open(dbPath)
		dsn = dbPath
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Erreur connexion DB:", err)
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Equipment{},
		&models.Usage{},
		&models.Alert{},
		&models.Prediction{},
	); err != nil {
		log.Fatal("Erreur migration:", err)
	}

	DB = database
	log.Println("📦 DB connectée et migrée sur", dsn)
}

// EnsureAdmin crée un compte administrateur approuvé si aucun n'existe.
// Sans ADMIN_PASSWORD, un mot de passe est généré et affiché une seule fois.
func EnsureAdmin(cfg config.Config) {
	var count int64
	DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return
	}

	password := cfg.AdminPassword
	generated := false
	if password == "" {
		password = uuid.NewString()[:12]
		generated = true
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Erreur création admin:", err)
	}

	admin := models.User{
		Username:       cfg.AdminUsername,
		Email:          cfg.AdminEmail,
		Password:       hash,
		IsAdmin:        true,
		IsApproved:     true,
		AlertThreshold: 10.0,
		DailyGoal:      5.0,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Erreur création admin:", err)
	}

	if generated {
		log.Printf("👤 Admin '%s' créé avec le mot de passe généré : %s", admin.Username, password)
	} else {
		log.Printf("👤 Admin '%s' créé", admin.Username)
	}
}
