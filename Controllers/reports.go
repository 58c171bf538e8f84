package Controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hpoinseaux/Assmatapp/Ledger"
	"github.com/Hpoinseaux/Assmatapp/Reports"
)

// ReportController generates the monthly hours workbook on demand.
type ReportController struct {
	Ledger *Ledger.Service
}

func NewReportController(ledger *Ledger.Service) *ReportController {
	return &ReportController{Ledger: ledger}
}

// GetMonthly builds and streams recap_<year>-<month>.xlsx for
// ?month=&year=.
func (rc *ReportController) GetMonthly(ctx *fiber.Ctx) error {
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month"})
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil || year < 2000 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	records, err := rc.Ledger.Records(ctx.Context())
	if err != nil {
		log.Println("load attendance:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load attendance"})
	}

	workbook, err := Reports.Generate(records, time.Month(month), year)
	if errors.Is(err, Reports.ErrNoDataForPeriod) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Aucune donnée pour ce mois.",
		})
	}
	if err != nil {
		log.Println("generate report:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	data, err := Reports.WorkbookBytes(workbook)
	if err != nil {
		log.Println("render report:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	name := Reports.Filename(year, time.Month(month))
	ctx.Set(fiber.HeaderContentType, xlsxMime)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return ctx.Send(data)
}
