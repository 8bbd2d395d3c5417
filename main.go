package main

import (
	"log"

	"github.com/templetrust/sevaledger/config"
	"github.com/templetrust/sevaledger/controllers"
	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/routes"
	"github.com/templetrust/sevaledger/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables. Fails closed in production when the
	// webhook secret is absent.
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize the durable store; degrade to the local snapshot when
	// it is unreachable so the public dashboard keeps working.
	var store ledger.Store
	fallback := false
	if err := config.InitDB(cfg); err != nil {
		utils.LogError("Durable store unavailable, degrading to local fallback: %v", err)
		fileStore, fsErr := ledger.NewFileStore(cfg.DataDir)
		if fsErr != nil {
			utils.LogError("Failed to open fallback store: %v", fsErr)
			log.Fatal("Failed to open fallback store:", fsErr)
		}
		store = fileStore
		fallback = true
	} else {
		store = ledger.NewGormStore(config.DB)
	}

	broker := ledger.NewBroker()
	if rdb := config.InitRedis(cfg); rdb != nil {
		broker.AttachRedis(rdb)
		utils.LogInfo("Ledger change feed bridged over redis")
	}

	svc := ledger.NewService(store, broker, fallback)
	controllers.Init(cfg, svc)

	// Seed the admin account
	if !fallback {
		if err := controllers.CreateSampleAdmin(); err != nil {
			utils.LogError("Failed to create sample admin: %v", err)
			log.Fatal("Failed to create sample admin:", err)
		}
	}

	// Set up router
	router := routes.SetupRouter(cfg)

	utils.LogInfo("Server starting on port %s (fallback=%v)", cfg.Port, fallback)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
