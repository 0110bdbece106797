package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookingpro-backend/config"
	"bookingpro-backend/repository"
	"bookingpro-backend/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := config.ConnectDB(cfg)

	repo := repository.NewBookingRepo(db)
	if err := repo.Migrate(); err != nil {
		log.Printf("schema migration failed: %v", err)
	}

	r := routes.SetupRouter(repo)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
