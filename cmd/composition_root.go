package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	config   Config
	settings services.AllocationSettings
	factory  *memory.Factory
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, settings services.AllocationSettings, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:   config,
		settings: settings,
		factory:  memory.NewFactory(),
		logger:   logger,
	}
}

func (c *CompositionRoot) CreateProcessBatchCommandHandler() (commands.ProcessBatchCommandHandler, error) {
	return commands.NewProcessBatchCommandHandler(c.factory, c.settings, c.logger)
}

func (c *CompositionRoot) CreateQuoteShipmentQueryHandler() (queries.QuoteShipmentQueryHandler, error) {
	return queries.NewQuoteShipmentQueryHandler(c.factory, c.settings)
}

func (c *CompositionRoot) CreateBatchImportJob() (*jobs.BatchImportJob, error) {
	handler, err := c.CreateProcessBatchCommandHandler()
	if err != nil {
		return nil, err
	}

	return jobs.NewBatchImportJob(
		handler,
		c.config.ImportInboxDir,
		c.config.ImportOutboxDir,
		c.config.ImportSchedule,
		c.logger,
	), nil
}
