package config

import (
	"log"
	"os"
)

// Config contient la configuration principale du serveur.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load charge la configuration à partir des variables d'environnement.
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "3030"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", "changeme-super-secret"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@ecosens.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	if cfg.JWTSecret == "changeme-super-secret" {
		log.Println("[AVERTISSEMENT] JWT_SECRET n'est pas configuré ou utilise la valeur par défaut. Ne pas utiliser en production.")
	}

	return cfg
}

func (c Config) HTTPAddr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
