package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fulfillment/internal/adapters/in/flatfile"
	"fulfillment/internal/adapters/out/report"
	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	doneSuffix   = ".done"
	failedSuffix = ".failed"
)

// BatchImportJob periodically scans an inbox directory for batch interchange
// files. Each file is allocated as one batch and its shipment report written
// to the outbox directory under the same name; the input is then renamed with
// a .done suffix so the next scan skips it.
type BatchImportJob struct {
	handler   commands.ProcessBatchCommandHandler
	inboxDir  string
	outboxDir string
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewBatchImportJob creates a job scanning inboxDir on the given cron
// schedule, e.g. "@every 30s".
func NewBatchImportJob(
	handler commands.ProcessBatchCommandHandler,
	inboxDir string,
	outboxDir string,
	schedule string,
	logger *slog.Logger,
) *BatchImportJob {
	return &BatchImportJob{
		handler:   handler,
		inboxDir:  inboxDir,
		outboxDir: outboxDir,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "batch_import_job"),
	}
}

// Start begins the inbox scan on the configured schedule.
func (j *BatchImportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.scanInbox(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Batch import job started", "inbox", j.inboxDir, "schedule", j.schedule)
	return nil
}

// Stop stops the inbox scan.
func (j *BatchImportJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Batch import job stopped")
}

func (j *BatchImportJob) scanInbox(ctx context.Context) {
	paths, err := filepath.Glob(filepath.Join(j.inboxDir, "*.txt"))
	if err != nil {
		j.logger.ErrorContext(ctx, "Inbox scan failed", "error", err)
		return
	}

	for _, path := range paths {
		outputPath := filepath.Join(j.outboxDir, filepath.Base(path))

		if err = j.ProcessFile(ctx, path, outputPath); err != nil {
			j.logger.ErrorContext(ctx, "Batch file failed", "file", path, "error", err)
			j.setAside(ctx, path, path+failedSuffix)
			continue
		}

		j.logger.InfoContext(ctx, "Batch file processed", "file", path, "report", outputPath)
		j.setAside(ctx, path, path+doneSuffix)
	}
}

func (j *BatchImportJob) setAside(ctx context.Context, path, target string) {
	if err := os.Rename(path, target); err != nil {
		j.logger.ErrorContext(ctx, "Could not set batch file aside", "file", path, "error", err)
	}
}

// ProcessFile allocates the batch file at inputPath and writes its shipment
// report to outputPath. It is also the backing of the one-shot command line
// mode.
func (j *BatchImportJob) ProcessFile(ctx context.Context, inputPath, outputPath string) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open batch file: %w", err)
	}
	defer input.Close()

	batch, err := flatfile.Parse(input)
	if err != nil {
		return fmt.Errorf("parse batch file: %w", err)
	}

	cmd, err := commands.NewProcessBatchCommand(batch.Data, batch.Orders)
	if err != nil {
		return err
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer output.Close()

	if err = report.Write(output, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return output.Close()
}
