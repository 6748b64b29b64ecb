// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. BatchImportJob - scans an inbox directory for batch interchange files,
// allocates each batch and writes the shipment report to an outbox directory.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(batchImportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed batch file is renamed with a .failed suffix and logged; the scan
// continues with the remaining files, so one bad batch never blocks the
// inbox.
package jobs
