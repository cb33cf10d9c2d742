package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/swipeschedule/ss_backendl/config"
	"github.com/swipeschedule/ss_backendl/db"
	"github.com/swipeschedule/ss_backendl/internal/routes"
	"github.com/swipeschedule/ss_backendl/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.NewConfig()

	database := db.InitDB(cfg.DatabaseDSN)
	defer database.Close()

	shiftStore := store.NewShiftStore(cfg.MongoURI, cfg.MongoDBName)

	router := routes.Setup(cfg, database, shiftStore)

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Backend API running on %s", serverAddress)
	if err := http.ListenAndServe(serverAddress, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
