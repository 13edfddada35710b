// Package exec implements the commands of the execution CLI.
package exec

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/axonweb3/axon-exec/cell"
	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/state"
	"github.com/axonweb3/axon-exec/types"
	"github.com/axonweb3/axon-exec/utils"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// metricsPrefix selects the registered metrics reported after a run.
const metricsPrefix = "executor/"

// openState opens the state backend selected by the configuration, primes it
// with the genesis allocation if one is given and sets the block vicinity.
func openState(cfg *utils.Config, log logger.Logger) (*state.KVBackend, error) {
	var (
		backend *state.KVBackend
		err     error
	)
	if cfg.StateDb == "" {
		backend = state.MakeMemoryBackend()
	} else {
		backend, err = state.MakeLevelDbBackend(cfg.StateDb, cfg.StateDbCache, cfg.StateDbHandles)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Genesis != "" {
		var alloc core.GenesisAlloc
		if err = readJSON(cfg.Genesis, &alloc); err != nil {
			mustCloseState(backend)
			return nil, fmt.Errorf("cannot read genesis; %v", err)
		}
		log.Noticef("Priming state with %d genesis accounts", len(alloc))
		state.PrimeBackend(backend, alloc)
	}

	backend.SetVicinity(&types.Vicinity{
		BlockNumber: cfg.Number,
		Timestamp:   cfg.Timestamp,
		Coinbase:    cfg.Coinbase,
	})
	return backend, nil
}

// wrapState adds the logging decorator to the backend if db logging is
// enabled.
func wrapState(cfg *utils.Config, backend state.Backend) state.Backend {
	if !cfg.DbLogging {
		return backend
	}
	return state.MakeLoggingBackend(backend, logger.NewLogger(cfg.LogLevel, "Db Logging"))
}

// mustCloseState closes the state backend, any error is only logged.
func mustCloseState(backend *state.KVBackend) {
	if err := backend.Close(); err != nil {
		log.Printf("WARNING: cannot close state db; %v", err)
	}
}

// mustCloseCells closes the cell store, any error is only logged.
func mustCloseCells(store *cell.CellStore) {
	if err := store.Close(); err != nil {
		log.Printf("WARNING: cannot close cell db; %v", err)
	}
}

// readJSON decodes the JSON content of the given file into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot decode %v; %v", path, err)
	}
	return nil
}

// exitString colors the exit status by its outcome.
func exitString(reason types.ExitReason) string {
	switch {
	case reason.IsSucceed():
		return color.GreenString(reason.String())
	case reason.IsRevert():
		return color.YellowString(reason.String())
	default:
		return color.RedString(reason.String())
	}
}

// printMetrics sends a table of the execution metrics to the writer.
func printMetrics(w io.Writer, log logger.Logger) {
	if !metrics.Enabled {
		log.Warningf("Metrics are disabled; --%v must be given on the command line", utils.MetricsFlag.Name)
		return
	}

	rows := make([][]string, 0)
	metrics.DefaultRegistry.Each(func(name string, i interface{}) {
		if !strings.HasPrefix(name, metricsPrefix) {
			return
		}
		switch m := i.(type) {
		case metrics.Counter:
			rows = append(rows, []string{name, strconv.FormatInt(m.Count(), 10)})
		case metrics.Meter:
			s := m.Snapshot()
			rows = append(rows, []string{name, fmt.Sprintf("%d (%.2f/s)", s.Count(), s.RateMean())})
		case metrics.Timer:
			s := m.Snapshot()
			rows = append(rows, []string{name, fmt.Sprintf("%d runs, mean %v", s.Count(), time.Duration(s.Mean()))})
		}
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Value"})
	tbl.SetBorder(true)
	tbl.AppendBulk(rows)
	tbl.Render()
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
