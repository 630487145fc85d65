package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"barber-booking/internal/config"
	dbpkg "barber-booking/internal/db"
	"barber-booking/internal/middleware"
	"barber-booking/internal/routes"
	"barber-booking/internal/storage"
	"barber-booking/internal/tokens"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var denylist tokens.Denylist = tokens.NewGormDenylist(db)
	if cfg.RedisURL != "" {
		rd, err := tokens.NewRedisDenylist(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		denylist = rd
	}

	var uploader storage.Uploader
	if cfg.S3Enabled() {
		uploader = storage.NewS3Uploader(cfg.S3)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, denylist, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
