package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"yieldboard/internal/infrastructure/config"
	"yieldboard/internal/infrastructure/persistence"
	storeRepo "yieldboard/internal/interface/repository"
	"yieldboard/internal/seed"
	"yieldboard/pkg/logger"
	"yieldboard/pkg/utils"
)

func main() {
	force := flag.Bool("force", false, "regenerate every collection, replacing stored data")
	seedValue := flag.Int64("seed", 0, "random seed for generated data (overrides SEED, 0 keeps config)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedValue != 0 {
		cfg.Seed = *seedValue
	}

	log := logger.NewLogger("yieldboard-seed", cfg.AppVersion, cfg.LogLevel)
	defer log.Sync()

	ctx := context.Background()

	backend, err := persistence.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store", "driver", cfg.StoreDriver, "error", err)
	}
	defer backend.Close(ctx)

	clock := utils.SystemClock{}
	store := storeRepo.NewDataStore(backend, seed.NewSeededGenerator(clock, cfg.Seed), clock, log, nil)

	if *force {
		err = store.Reseed(ctx)
	} else {
		err = store.Init(ctx)
	}
	if err != nil {
		log.Fatal("Failed to seed store", "force", *force, "error", err)
	}

	products, err := store.GetAllProducts(ctx)
	if err != nil {
		log.Fatal("Failed to read products", "error", err)
	}
	versions, err := store.GetAllPricingVersions(ctx)
	if err != nil {
		log.Fatal("Failed to read pricing versions", "error", err)
	}
	departures, err := store.GetAllDepartures(ctx)
	if err != nil {
		log.Fatal("Failed to read departures", "error", err)
	}

	fmt.Printf("Store ready (%s): %d products, %d pricing versions, %d departures\n",
		cfg.StoreDriver, len(products), len(versions), len(departures))
}
