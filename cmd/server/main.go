package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"rolematch/internal/app"
	"rolematch/internal/config"
	"rolematch/internal/handlers/api"
	"rolematch/internal/logging"
	"rolematch/internal/metrics"
	"rolematch/internal/server"
)

func main() {
	// A local .env is optional.
	_ = godotenv.Load()

	ctx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()

	cfg := config.Load()
	logging.Init(cfg.LogFormat, cfg.LogLevel)

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	svc, err := app.New(ctx, cfg, yamlCfg)
	if err != nil {
		log.Fatalf("Failed to start service: %v", err)
	}
	if svc.UsesDatabase() {
		log.Println("Using Postgres stores")
	} else {
		log.Println("DATABASE_URL not set, using in-memory stores (mappings are lost on restart)")
	}

	metrics.Init(svc.Store)

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Handlers{
		Match:   api.NewMatchHandler(svc.Matcher),
		Mapping: api.NewMappingHandler(svc.Feedback),
		Header:  api.NewHeaderHandler(svc.Mapper, svc.Synonyms),
		Import:  api.NewImportHandler(svc.Importer),
		Health:  api.NewHealthHandler(svc.Store),
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	stopJobs()

	// Pending feedback writes are bounded by the loop's write timeout.
	svc.Close()
	log.Println("Server exited")
}
