package main

import (
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/InkFox/internal/pkg/database"
	"github.com/ManuelReschke/InkFox/internal/pkg/env"
	"github.com/ManuelReschke/InkFox/internal/pkg/seed"
)

func main() {
	env.SetupEnvFile()

	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Info("Seeding complete")
}
