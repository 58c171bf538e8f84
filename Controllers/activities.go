package Controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hpoinseaux/Assmatapp/Ledger"
	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/Notifications"
)

// ActivityController handles the caregiver's activity buttons, the history
// feed and the need-notes.
type ActivityController struct {
	Ledger   *Ledger.Service
	Children []string
}

func NewActivityController(ledger *Ledger.Service, children []string) *ActivityController {
	return &ActivityController{Ledger: ledger, Children: children}
}

type activityRequest struct {
	Child       string `json:"name" validate:"required"`
	Activity    string `json:"activity" validate:"required"`
	Observation string `json:"observation"`
}

// RecordActivity appends one routine event (meal, nap, diaper change, snack)
// with an optional observation.
func (ac *ActivityController) RecordActivity(ctx *fiber.Ctx) error {
	var input activityRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}
	if !knownChild(ac.Children, input.Child) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown child"})
	}

	kind := Models.ActivityKind(input.Activity)
	if !kind.Routine() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown activity"})
	}

	event := Models.NewActivityEvent(input.Child, kind, time.Now(), input.Observation)
	if err := ac.Ledger.Append(ctx.Context(), event); err != nil {
		log.Println("append activity:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save activity"})
	}

	return ctx.JSON(fiber.Map{"message": "Activité enregistrée", "event": event})
}

type needRequest struct {
	Child       string `json:"name" validate:"required"`
	Observation string `json:"observation" validate:"required"`
}

// RecordNeed appends a need-note and pushes it to the child's parents.
func (ac *ActivityController) RecordNeed(ctx *fiber.Ctx) error {
	var input needRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Le champ de besoin est vide.",
			"errors":  validationErrors(err),
		})
	}
	if !knownChild(ac.Children, input.Child) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown child"})
	}

	event := Models.NewActivityEvent(input.Child, Models.ActivityNeedNote, time.Now(), input.Observation)
	if err := ac.Ledger.Append(ctx.Context(), event); err != nil {
		log.Println("append need note:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save note"})
	}

	go Notifications.SendNeedNote(input.Child, input.Observation)

	return ctx.JSON(fiber.Map{"message": "Besoin enregistré avec succès"})
}

// GetHistory returns all events newest first, optionally filtered with
// ?name=.
func (ac *ActivityController) GetHistory(ctx *fiber.Ctx) error {
	events, err := ac.Ledger.History(ctx.Context(), ctx.Query("name"))
	if err != nil {
		log.Println("load history:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load history"})
	}
	return ctx.JSON(events)
}
