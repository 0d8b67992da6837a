package main

import (
	"fmt"
	"log"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/configs"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/middlewares"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/routes"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDrinkBrands(); err != nil {
		log.Fatalf("seed drink brands failed: %v", err)
	}

	// Realtime hub
	hub := ws.NewHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
