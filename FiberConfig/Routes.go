package FiberConfig

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Hpoinseaux/Assmatapp/Controllers"
	"github.com/Hpoinseaux/Assmatapp/Ledger"
	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/Storage"
	"github.com/Hpoinseaux/Assmatapp/config"
	"github.com/Hpoinseaux/Assmatapp/middleware"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, ledger *Ledger.Service, drive Storage.Drive, cutoff Models.ClockTime) {
	// Initialize handlers
	attendanceController := Controllers.NewAttendanceController(ledger, cfg.Children)
	activityController := Controllers.NewActivityController(ledger, cfg.Children)
	parentController := Controllers.NewParentController(ledger, cutoff)
	photoController := Controllers.NewPhotoController(drive, cfg.Children)
	reportController := Controllers.NewReportController(ledger)

	app.Post("/api/Login", Controllers.Login)
	app.Post("/api/Logout", Controllers.Logout)
	app.Get("/api/User", middleware.Verify(""), Controllers.User)
	app.Get("/api/validate-token", middleware.Verify(""), Controllers.ValidateToken)
	app.Post("/api/UpdateToken", middleware.Verify(""), Controllers.UpdateToken)

	// Caregiver routes
	nounou := app.Group("/api/nounou", middleware.Verify(Models.RoleNounou))
	nounou.Post("/arrival", attendanceController.RecordArrival)
	nounou.Post("/departure", attendanceController.RecordDeparture)
	nounou.Get("/attendance", attendanceController.GetRecords)
	nounou.Post("/activities", activityController.RecordActivity)
	nounou.Get("/activities", activityController.GetHistory)
	nounou.Post("/needs", activityController.RecordNeed)
	nounou.Get("/reports/monthly", reportController.GetMonthly)
	nounou.Post("/photos", photoController.Upload)
	nounou.Get("/photos", photoController.List)
	nounou.Get("/photos/download", photoController.Download)

	// Parent routes (read-only, time-gated day view)
	parent := app.Group("/api/parent", middleware.Verify(Models.RoleParent))
	parent.Get("/dates", parentController.GetDates)
	parent.Get("/day", parentController.GetDay)
	parent.Get("/photos", photoController.List)
	parent.Get("/photos/download", photoController.Download)
}

// FiberConfig assembles the app and blocks serving it.
func FiberConfig(cfg *config.Config, ledger *Ledger.Service, drive Storage.Drive, cutoff Models.ClockTime) {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, cfg, ledger, drive, cutoff)

	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal(err)
	}
}
