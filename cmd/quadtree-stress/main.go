// Command quadtree-stress repeatedly builds and tears down a quadtree full
// of random points, validating the structure after every round. It exercises
// the pool's reset path the way a per-frame spatial index would.
package main

import (
	"flag"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/chadmckinney/quadtree-go"
)

func main() {
	var (
		pageSize    = flag.Int("page-size", 32768, "node pool page size")
		rounds      = flag.Int("rounds", 8192, "number of reset-and-fill rounds")
		seed        = flag.Int64("seed", 0, "random seed, 0 picks a time-based one")
		check       = flag.Bool("sanity-check", true, "validate the tree after every round")
		logInterval = flag.Int("log-interval", 1024, "rounds between progress logs")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	logger.Info("starting stress run",
		zap.Int("page_size", *pageSize),
		zap.Int("rounds", *rounds),
		zap.Int64("seed", *seed))

	qt := quadtree.NewQuadTree64(*pageSize)
	start := time.Now()
	inserts := 0
	duplicates := 0
	for i := 1; i < *rounds; i++ {
		roundStart := time.Now()
		qt.Reset()
		for j := 0; j < i; j++ {
			p := quadtree.Coord64{X: rng.Uint64(), Y: rng.Uint64()}
			if qt.Insert(p) == quadtree.InsertDuplicateEntry {
				duplicates++
			}
			inserts++
		}
		if *check {
			qt.SanityCheck()
		}
		if i%*logInterval == 0 {
			stats := qt.Stats()
			logger.Info("round complete",
				zap.Int("round", i),
				zap.Int("points", qt.Len()),
				zap.Int("pool_pages", stats.Pages),
				zap.Int("pool_capacity", stats.Capacity),
				zap.Int("pool_in_use", stats.InUse),
				zap.Duration("round_time", time.Since(roundStart)))
		}
	}

	logger.Info("stress run complete",
		zap.Int("total_inserts", inserts),
		zap.Int("duplicates", duplicates),
		zap.Duration("elapsed", time.Since(start)))
}
