package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"roster-manager/core/config"
	"roster-manager/core/database"
	"roster-manager/core/loader"
	"roster-manager/core/logger"
	"roster-manager/core/middleware/auth"
	"roster-manager/core/middleware/rayid"
	"roster-manager/core/middleware/requestlog"
	"roster-manager/core/storage"
	"roster-manager/core/store"
	"roster-manager/feature/integrity"
	"roster-manager/feature/records"
	"roster-manager/feature/records/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "roster-manager/docs/swagger"
)

// @title Roster Manager API
// @version 1.0
// @description API for importing and reconciling course roster spreadsheets.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the roster manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database and migrate the record table
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		recordStore := store.New(db)
		if err := recordStore.Migrate(context.Background()); err != nil {
			logg.Fatal("Failed to migrate record store", zap.Error(err))
		}
		logg.Info("Connected to record database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("name", cfg.Database.Name))

		// 4. Initialize Storage
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Initialize Feature Loader
		registry := schemas.NewRegistry()
		mgr := loader.NewManager()
		mgr.Register(records.NewFeature(
			registry,
			recordStore,
			client,
			cfg.Storage.Bucket,
			logg,
			cfg.Import,
			cfg.Reconcile,
		))
		mgr.Register(integrity.NewFeature(registry, client, cfg.Storage.Bucket, logg, db))

		// RayID first so every later log line carries it
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
