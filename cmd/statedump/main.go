// statedump prints the client-facing summary of the system state held in a
// store, for debugging and support. With -seed it first commits the built-in
// fixture state, which is handy for demoing the api server locally.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/verdant-network/verdant-api/pkg/chain/chaintest"
	"github.com/verdant-network/verdant-api/pkg/db"
	"github.com/verdant-network/verdant-api/pkg/logging"
	"github.com/verdant-network/verdant-api/pkg/state"
	"github.com/verdant-network/verdant-api/pkg/transform"
	"github.com/verdant-network/verdant-api/pkg/utils"
)

func main() {
	dbPath := flag.String("db", utils.Env("DB_PATH", "data/verdant"), "path to the state store")
	seed := flag.Bool("seed", false, "commit the built-in fixture state before dumping")
	epoch := flag.Uint64("epoch", 7, "epoch number for the seeded fixture")
	flag.Parse()

	logger, err := logging.New("statedump")
	if err != nil {
		panic(err)
	}

	var store db.Store
	if *seed {
		store, err = db.NewPebbleStore(*dbPath, logger)
	} else {
		store, err = db.NewReadOnlyPebbleStore(*dbPath, logger)
	}
	if err != nil {
		logger.Fatal("Unable to open state store", zap.String("path", *dbPath), zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	provider := state.NewStoreProvider(store)

	if *seed {
		s := chaintest.State()
		s.Epoch = *epoch
		if err := provider.Commit(s); err != nil {
			logger.Fatal("Unable to seed state", zap.Error(err))
		}
		logger.Info("Seeded fixture state", zap.Uint64("epoch", s.Epoch))
	}

	s, err := provider.SystemState(context.Background())
	if err != nil {
		if errors.Is(err, state.ErrNotInitialized) {
			logger.Fatal("No system state committed yet", zap.String("path", *dbPath))
		}
		logger.Fatal("Unable to read system state", zap.Error(err))
	}

	summary, err := transform.EpochSummaryFromState(s)
	if err != nil {
		logger.Fatal("Unable to project system state", zap.Error(err))
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		logger.Fatal("Unable to encode summary", zap.Error(err))
	}
	fmt.Fprintln(os.Stdout, string(out))
}
