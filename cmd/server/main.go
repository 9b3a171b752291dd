package main

import (
	"log"
	"os"

	"joedank_back_end/internal/config"
	"joedank_back_end/internal/database"
	"joedank_back_end/internal/downloads"
	"joedank_back_end/internal/handlers"
	"joedank_back_end/internal/handlers/payement"
	"joedank_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	secret := os.Getenv("STRIPE_SECRET_KEY")
	stripe.Key = secret
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	database.ConnectDatabases()

	// ✅ Registre des liens de téléchargement (statique, chargé au démarrage)
	registry := downloads.Load()

	cartStore := database.NewRedisCartStore(database.Redis)
	eventStore := database.NewRedisEventStore(database.Redis)

	cartHandler := handlers.NewCartHandler(cartStore)
	paymentHandler := payement.NewHandler(cartStore, eventStore, registry)

	r := gin.Default()
	r.Use(corsConfig())
	routes.RegisterRoutes(r, cartHandler, paymentHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur JoedankBeats lancé sur le port", port)
	r.Run(":" + port)
}

func corsConfig() gin.HandlerFunc {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{frontend}
	cfg.AllowCredentials = true // le cookie panier doit passer
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Stripe-Signature")
	return cors.New(cfg)
}
