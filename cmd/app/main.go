package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/config"
	httpin "fulfillment/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	settings, err := config.LoadAllocationSettings(configs.EngineSettingsPath)
	if err != nil {
		logger.Error("Invalid engine settings", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, settings, logger)

	// One-shot mode: `app <input file> <output file>` allocates one batch
	// and exits.
	if len(os.Args) == 3 {
		runBatchFile(&root, logger, os.Args[1], os.Args[2])
		return
	}

	startJobs(&root, logger)
	startWebServer(&root, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		EngineSettingsPath: goDotEnvVariable("ENGINE_SETTINGS_PATH"),
		ImportInboxDir:     goDotEnvVariable("IMPORT_INBOX_DIR"),
		ImportOutboxDir:    goDotEnvVariable("IMPORT_OUTBOX_DIR"),
		ImportSchedule:     goDotEnvVariable("IMPORT_SCHEDULE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func runBatchFile(root *cmd.CompositionRoot, logger *slog.Logger, inputPath, outputPath string) {
	job, err := root.CreateBatchImportJob()
	if err != nil {
		logger.Error("Could not build batch processor", "error", err)
		os.Exit(1)
	}

	if err = job.ProcessFile(context.Background(), inputPath, outputPath); err != nil {
		logger.Error("Batch run failed", "file", inputPath, "error", err)
		os.Exit(1)
	}

	logger.Info("Batch run completed", "file", inputPath, "report", outputPath)
}

func startJobs(root *cmd.CompositionRoot, logger *slog.Logger) {
	job, err := root.CreateBatchImportJob()
	if err != nil {
		logger.Error("Could not build batch import job", "error", err)
		os.Exit(1)
	}

	if err = job.Start(); err != nil {
		logger.Error("Could not start batch import job", "error", err)
		os.Exit(1)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	batchHandler, err := root.CreateProcessBatchCommandHandler()
	if err != nil {
		logger.Error("Could not build batch handler", "error", err)
		os.Exit(1)
	}

	quoteHandler, err := root.CreateQuoteShipmentQueryHandler()
	if err != nil {
		logger.Error("Could not build quote handler", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	httpin.NewServer(batchHandler, quoteHandler).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
