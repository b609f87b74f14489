package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dopetech/dopetech-api/controllers"
	"github.com/dopetech/dopetech-api/edge"
	"github.com/dopetech/dopetech-api/initializers"
	"github.com/dopetech/dopetech-api/routes"
	"github.com/dopetech/dopetech-api/supabase"
)

func main() {
	initializers.LoadEnv()
	cfg := initializers.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	checkKeyRole(logger, "SUPABASE_ANON_KEY", cfg.AnonKey, "anon")
	checkKeyRole(logger, "SUPABASE_SERVICE_ROLE_KEY", cfg.ServiceRoleKey, "service_role")

	// One client per credential level, created once and shared by every
	// request. The anon client can never write.
	readClient := supabase.NewClient(cfg.SupabaseURL, cfg.AnonKey, "dopetech-edge")
	adminClient := supabase.NewClient(cfg.SupabaseURL, cfg.ServiceRoleKey, "dopetech-edge-admin")
	edgeService := edge.NewService(readClient, adminClient, cfg.EdgeQueryTimeout, logger)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server,
		controllers.NewProductController(adminClient, edgeService, logger),
		controllers.NewEdgeProductController(edgeService, logger))
	routes.ImageRoutes(server,
		controllers.NewProductImageController(readClient, adminClient, logger),
		controllers.NewHeroImageController(readClient, adminClient, edgeService, logger))
	routes.OrderRoutes(server, controllers.NewOrderController(adminClient, logger))
	routes.StorageRoutes(server,
		controllers.NewQRCodeController(adminClient, logger),
		controllers.NewAssetController(adminClient, logger),
		controllers.NewStorageController(readClient, adminClient, "product-images", "product", logger),
		controllers.NewStorageController(readClient, adminClient, "qr-codes", "qr", logger))

	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func checkKeyRole(logger zerolog.Logger, name, key, want string) {
	role, err := supabase.KeyRole(key)
	if err != nil {
		logger.Warn().Err(err).Str("key", name).Msg("could not parse API key")
		return
	}
	if role != want {
		logger.Warn().Str("key", name).Str("role", role).Str("want", want).Msg("API key role mismatch")
	}
}
