// Command seed provisions a local database with a ready-to-use family and a
// month of generated history, so the app has something to show on a fresh
// checkout.
package main

import (
	"context"
	"flag"
	"log"

	"nestlog/internal/config"
	"nestlog/internal/demo"
	"nestlog/internal/logger"
	"nestlog/internal/model"
	"nestlog/internal/realtime"
	"nestlog/internal/service"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	secret := flag.String("secret", "changeme", "join secret for the seeded family")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	if err := db.AutoMigrate(
		&model.Family{}, &model.Device{}, &model.Baby{},
		&model.SupplementPreset{}, &model.Activity{},
	); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	ctx := context.Background()
	families := service.NewFamilyService(db)
	activities := service.NewActivityService(db, realtime.NewHub())

	fam, dev, err := families.Create(ctx, "Seed Family", *secret, "seed device")
	if err != nil {
		log.Fatal("create family failed: ", err)
	}

	data := demo.Generate()
	if _, err := families.UpsertBaby(ctx, fam.ID, data.Baby.Name, data.Baby.Birthday); err != nil {
		log.Fatal("baby failed: ", err)
	}
	for _, p := range data.SupplementPresets {
		if _, err := families.AddPreset(ctx, fam.ID, p.Name); err != nil {
			log.Fatal("preset failed: ", err)
		}
	}
	for i := range data.Activities {
		act := data.Activities[i]
		act.FamilyID = fam.ID
		act.DeviceID = dev.ID
		if err := activities.Create(ctx, &act); err != nil {
			log.Fatal("activity failed: ", err)
		}
	}

	logger.Info("seed done", "code", fam.Code, "activities", len(data.Activities))
}
