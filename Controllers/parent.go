package Controllers

import (
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hpoinseaux/Assmatapp/Ledger"
	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/middleware"
)

// ParentController serves the read-only parent feed. The child is always the
// one bound to the parent account, never a request parameter.
type ParentController struct {
	Ledger *Ledger.Service
	Cutoff Models.ClockTime
}

func NewParentController(ledger *Ledger.Service, cutoff Models.ClockTime) *ParentController {
	return &ParentController{Ledger: ledger, Cutoff: cutoff}
}

// GetDates lists the child's attended dates, newest first, for the date
// picker.
func (pc *ParentController) GetDates(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)
	records, err := pc.Ledger.RecordsFor(ctx.Context(), user.ChildName)
	if err != nil {
		log.Println("load attendance:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load attendance"})
	}

	seen := make(map[string]time.Time)
	for _, r := range records {
		if day, err := r.Day(); err == nil {
			seen[r.Date] = day
		}
	}
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return seen[dates[i]].After(seen[dates[j]]) })

	return ctx.JSON(fiber.Map{"child": user.ChildName, "dates": dates})
}

// GetDay returns one day's attendance, routine activities and need-notes for
// the parent's child. The whole view is held back until the visibility
// cutoff has passed.
func (pc *ParentController) GetDay(ctx *fiber.Ctx) error {
	user := middleware.CurrentUser(ctx)

	day, err := Models.ParseDate(ctx.Query("date"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected dd/mm/yyyy"})
	}

	if !Ledger.VisibleToParent(time.Now(), pc.Cutoff) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Les données seront visibles à partir de " + pc.Cutoff.String(),
		})
	}

	records, err := pc.Ledger.RecordsFor(ctx.Context(), user.ChildName)
	if err != nil {
		log.Println("load attendance:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load attendance"})
	}
	date := day.Format(Models.DateLayout)
	var presence *Models.AttendanceRecord
	for i := range records {
		if records[i].Date == date {
			presence = &records[i]
			break
		}
	}

	activities, err := pc.Ledger.DayActivities(ctx.Context(), user.ChildName, day)
	if err != nil {
		log.Println("load activities:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load activities"})
	}

	needs, err := pc.Ledger.NeedNotes(ctx.Context(), user.ChildName, day)
	if err != nil {
		log.Println("load need notes:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load need notes"})
	}

	return ctx.JSON(fiber.Map{
		"child":      user.ChildName,
		"date":       date,
		"presence":   presence,
		"activities": activities,
		"needs":      needs,
	})
}
