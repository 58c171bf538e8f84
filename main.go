package main

import (
	"log"

	"github.com/Hpoinseaux/Assmatapp/CronJobs"
	"github.com/Hpoinseaux/Assmatapp/FiberConfig"
	"github.com/Hpoinseaux/Assmatapp/Ledger"
	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/Notifications"
	"github.com/Hpoinseaux/Assmatapp/Storage"
	"github.com/Hpoinseaux/Assmatapp/config"
	"github.com/Hpoinseaux/Assmatapp/middleware"
)

func main() {
	cfg := config.Load()
	middleware.SecretKey = cfg.SecretKey

	cutoff, err := Models.ParseClock(cfg.VisibilityCutoff)
	if err != nil {
		log.Fatal("invalid VISIBILITY_CUTOFF:", err)
	}

	Models.Connect(cfg)

	drive, err := Storage.NewS3Drive(cfg)
	if err != nil {
		log.Fatal("failed to set up drive:", err)
	}

	ledger := Ledger.NewService(drive, cfg.AllowOvernight)

	if err := Notifications.InitFirebase(cfg.FirebaseCredentials); err != nil {
		log.Println("Failed to initialize Firebase:", err)
	}

	exporter := CronJobs.StartMonthlyExport(ledger, drive)
	defer exporter.Stop()

	FiberConfig.FiberConfig(cfg, ledger, drive, cutoff)
}
