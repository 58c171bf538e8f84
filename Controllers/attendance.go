package Controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hpoinseaux/Assmatapp/Ledger"
	"github.com/Hpoinseaux/Assmatapp/Models"
)

// AttendanceController handles the caregiver's arrival/departure buttons and
// the raw ledger view.
type AttendanceController struct {
	Ledger   *Ledger.Service
	Children []string
}

func NewAttendanceController(ledger *Ledger.Service, children []string) *AttendanceController {
	return &AttendanceController{Ledger: ledger, Children: children}
}

type attendanceRequest struct {
	Child string `json:"name" validate:"required"`
}

// RecordArrival stamps the child's arrival with the current wall clock,
// replacing any record already open for today.
func (ac *AttendanceController) RecordArrival(ctx *fiber.Ctx) error {
	var input attendanceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}
	if !knownChild(ac.Children, input.Child) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown child"})
	}

	now := time.Now()
	clock := Models.ClockOf(now)
	if err := ac.Ledger.RecordArrival(ctx.Context(), input.Child, now, clock); err != nil {
		log.Println("record arrival:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return ctx.JSON(fiber.Map{
		"message": "Arrivée enregistrée à " + clock.String(),
		"time":    clock.String(),
	})
}

// RecordDeparture closes today's record. A missing arrival is rejected with
// no write; a duration that cannot be computed still stores the departure and
// reports a warning.
func (ac *AttendanceController) RecordDeparture(ctx *fiber.Ctx) error {
	var input attendanceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}
	if !knownChild(ac.Children, input.Child) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown child"})
	}

	now := time.Now()
	clock := Models.ClockOf(now)
	record, err := ac.Ledger.RecordDeparture(ctx.Context(), input.Child, now, clock)
	switch {
	case errors.Is(err, Ledger.ErrNoArrivalFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Aucune heure d'arrivée trouvée pour aujourd'hui.",
		})
	case errors.Is(err, Models.ErrInvalidTimeFormat), errors.Is(err, Ledger.ErrDepartureBeforeArrival):
		// Departure saved, duration left unset.
		log.Println("record departure:", err)
		return ctx.JSON(fiber.Map{
			"message": "Départ enregistré à " + clock.String(),
			"warning": "Erreur de calcul : " + err.Error(),
			"record":  record,
		})
	case err != nil:
		log.Println("record departure:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return ctx.JSON(fiber.Map{
		"message": "Départ enregistré à " + clock.String(),
		"record":  record,
	})
}

// GetRecords returns the ledger, optionally filtered with ?name=.
func (ac *AttendanceController) GetRecords(ctx *fiber.Ctx) error {
	child := ctx.Query("name")
	var (
		records []Models.AttendanceRecord
		err     error
	)
	if child != "" {
		records, err = ac.Ledger.RecordsFor(ctx.Context(), child)
	} else {
		records, err = ac.Ledger.Records(ctx.Context())
	}
	if err != nil {
		log.Println("load attendance:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load attendance"})
	}
	return ctx.JSON(records)
}
