// Command seed-demo fills the record collection with synthetic
// wildfire-risk data for demos and local development. It is intended to
// be run offline, not as part of the main server.
//
// Flags:
//
//	--count     number of records to generate (default: 100)
//	--location  pin all records to one gazetteer site (default: mixed)
//	--seed      RNG seed, 0 = time-based
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/firewatch-bo/chiquitos-backend/internal/adapter/mongodb"
	"github.com/firewatch-bo/chiquitos-backend/internal/adapter/mongodb/firerisk"
	"github.com/firewatch-bo/chiquitos-backend/internal/app"
	"github.com/firewatch-bo/chiquitos-backend/internal/config"
	"github.com/firewatch-bo/chiquitos-backend/internal/risk"
)

func main() {
	countFlag := flag.Int("count", 100, "number of records to generate")
	locationFlag := flag.String("location", "", "pin all records to one site")
	seedFlag := flag.Int64("seed", 0, "RNG seed, 0 = time-based")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect mongodb", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background()) //nolint:errcheck

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Error("ensure indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	generator := risk.NewGenerator(rand.NewSource(seed), nil)
	records := generator.Generate(*countFlag, risk.Options{
		Location: *locationFlag,
		IDPrefix: "seed",
	})

	if err := firerisk.New(db).CreateMany(ctx, records); err != nil {
		logger.Error("insert records", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("demo data seeded",
		slog.Int("count", len(records)),
		slog.Int64("seed", seed),
	)
}
