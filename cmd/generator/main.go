package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Xenith-Quantumweather/luhnsynth/config"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/adapter/encoding/csvenc"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/adapter/encoding/jsonenc"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/adapter/filestore"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/ports"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/refdata"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/service"
	"github.com/Xenith-Quantumweather/luhnsynth/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("output_dir", cfg.Output.Dir).
		Ints("sizes", cfg.Datasets.Sizes).
		Msg("Starting transaction dataset generator")

	// One process-local randomness source shared by all generators.
	seed := cfg.Random.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Reference tables
	tables := service.Tables{
		CardBrands: refdata.CardBrands(),
		Merchants:  refdata.Merchants(),
		FirstNames: refdata.FirstNames(),
		LastNames:  refdata.LastNames(),
		Currencies: refdata.Currencies(),
		UserAgents: refdata.UserAgents(),
	}

	// Core services
	cardSvc := service.NewCardService(rng)
	genSvc := service.NewGeneratorService(tables, cardSvc, rng)

	// Output adapters
	store, err := filestore.New(cfg.Output.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare output directory")
	}
	encoders := []ports.TransactionEncoder{csvenc.New(), jsonenc.New()}

	exporter := service.NewDatasetService(genSvc, encoders, store, log)

	files, err := exporter.Export(cfg.Datasets.Sizes)
	if err != nil {
		log.Error().Err(err).Msg("Dataset generation failed")
		os.Exit(1)
	}

	log.Info().Strs("files", files).Msg("Done")
}
