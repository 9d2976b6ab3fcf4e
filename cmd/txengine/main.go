// Command txengine ingests a transaction record file and prints the final
// account snapshot to stdout.
//
// Usage:
//
//	txengine <records.csv>
//
// Individual records rejected by the engine are logged and skipped; a
// rejected record never mutates balances, so processing continues and the
// command still exits 0. Only transport-level corruption of the input and
// amount overflow abort the run.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/LerianStudio/lib-ledger/ledger"
	ledgercsv "github.com/LerianStudio/lib-ledger/ledger/csv"
	"github.com/LerianStudio/lib-ledger/ledger/log"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <records.csv>\n", os.Args[0])
		os.Exit(2)
	}

	ctx := context.Background()
	logger := log.NewZap(log.LevelInfo).With(
		log.String("app", "txengine"),
		log.String("run_id", uuid.NewString()),
	)

	err := run(ctx, logger, os.Args[1], os.Stdout)

	// Sync on stderr fails on some platforms; nothing actionable.
	_ = logger.Sync(ctx)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger log.Logger, path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	engine := ledger.NewEngine()
	reader := ledgercsv.NewReader(file)

	applied, rejected := 0, 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			if code := ledger.CodeOf(err); code != "" && code != ledger.ErrorAmountOverflow {
				rejected++

				logger.Log(ctx, log.LevelWarn, "skipping malformed record", log.Err(err))

				continue
			}

			return fmt.Errorf("reading %s: %w", path, err)
		}

		if err := engine.Apply(record); err != nil {
			if ledger.CodeOf(err) == ledger.ErrorAmountOverflow {
				return fmt.Errorf("applying tx %d: %w", record.TX, err)
			}

			rejected++

			logger.Log(ctx, log.LevelWarn, "record rejected",
				log.String("type", string(record.Kind)),
				log.Uint64("client", uint64(record.Client)),
				log.Uint64("tx", uint64(record.TX)),
				log.Err(err),
			)

			continue
		}

		applied++
	}

	logger.Log(ctx, log.LevelInfo, "ingestion finished",
		log.Int("applied", applied),
		log.Int("rejected", rejected),
	)

	writer := ledgercsv.NewWriter(out)
	for _, view := range engine.Snapshot() {
		if err := writer.Write(view); err != nil {
			return err
		}
	}

	return writer.Flush()
}
