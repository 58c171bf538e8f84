// Package CronJobs runs the scheduled background work: a monthly export of
// the previous month's attendance workbook into the drive.
package CronJobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Hpoinseaux/Assmatapp/Ledger"
	"github.com/Hpoinseaux/Assmatapp/Reports"
	"github.com/Hpoinseaux/Assmatapp/Storage"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StartMonthlyExport schedules the export for 06:00 on the first of each
// month and returns the running scheduler.
func StartMonthlyExport(ledger *Ledger.Service, drive Storage.Drive) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 6 1 * *", func() {
		ExportPreviousMonth(context.Background(), ledger, drive)
	}); err != nil {
		log.Println("failed to schedule monthly export:", err)
	}
	c.Start()
	return c
}

// ExportPreviousMonth generates last month's workbook and uploads it to the
// drive's reports folder. A month without data is just logged.
func ExportPreviousMonth(ctx context.Context, ledger *Ledger.Service, drive Storage.Drive) {
	prev := time.Now().AddDate(0, -1, 0)
	month, year := prev.Month(), prev.Year()

	records, err := ledger.Records(ctx)
	if err != nil {
		log.Println("monthly export: load attendance:", err)
		return
	}

	workbook, err := Reports.Generate(records, month, year)
	if errors.Is(err, Reports.ErrNoDataForPeriod) {
		log.Printf("monthly export: no data for %d-%02d", year, int(month))
		return
	}
	if err != nil {
		log.Println("monthly export: generate:", err)
		return
	}

	data, err := Reports.WorkbookBytes(workbook)
	if err != nil {
		log.Println("monthly export: render:", err)
		return
	}

	folder, err := drive.GetOrCreateFolder(ctx, "reports")
	if err != nil {
		log.Println("monthly export: folder:", err)
		return
	}
	name := Reports.Filename(year, month)
	if _, err := drive.UploadFile(ctx, folder, name, data, xlsxMime); err != nil {
		log.Println("monthly export: upload:", err)
		return
	}
	log.Println("monthly export: uploaded", name)
}
