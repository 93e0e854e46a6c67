// Package main - Entry point for the vehicle-cost API server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"vehicle-cost/api"
	"vehicle-cost/core/engine"
	"vehicle-cost/internal/config"
	"vehicle-cost/internal/logging"
	"vehicle-cost/refdata"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	refYear := flag.Int("reference-year", time.Now().Year(), "reference year for vehicle age")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("initialize logging: %v", err)
	}
	defer logging.Sync()

	calcCfg := engine.DefaultConfig(*refYear)
	calcCfg.DefaultMPG = cfg.Assumptions.DefaultMPG
	calcCfg.DefaultMPGe = cfg.Assumptions.DefaultMPGe
	calcCfg.DefaultReliabilityScore = cfg.Assumptions.DefaultReliabilityScore
	calcCfg.Logger = logging.Named("engine")

	var vehicles engine.VehicleSource = refdata.NewStaticVehicles()
	if cfg.RefData.DatabasePath != "" {
		store, err := refdata.OpenStore(cfg.RefData.DatabasePath, cfg.RefData.MigrateOnStart)
		if err != nil {
			log.Fatalf("open vehicle store: %v", err)
		}
		defer store.Close()
		vehicles = store
	}

	calc := engine.New(vehicles, refdata.NewRegions(), calcCfg)
	apiServer := api.NewServer(calc, version, *refYear)

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:        listen,
		Handler:     apiServer,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	}

	fmt.Printf("vehicle-cost server v%s listening on %s\n", version, listen)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
