package main

import (
	"flag"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wonee1/comazon/config"
	"github.com/wonee1/comazon/database"
	"github.com/wonee1/comazon/routes"
)

func main() {
	seed := flag.Bool("seed", false, "reset the database with sample data and exit")
	flag.Parse()

	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("closing DB: %v", err)
		}
	}()

	if *seed {
		if err := database.Seed(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("database seeded")
		return
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.SetupRoutes(r, db)

	log.Printf("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
