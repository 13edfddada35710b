package exec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/axonweb3/axon-exec/cell"
	"github.com/axonweb3/axon-exec/interop"
	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/types"
	"github.com/axonweb3/axon-exec/utils"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// ResolveCommand resolves the inputs and dependencies of a cell transaction.
// build/axon-exec resolve --celldb <dir> --dummy-input <lock.json> <tx.json>
var ResolveCommand = cli.Command{
	Action:    resolve,
	Name:      "resolve",
	Usage:     "resolves a cell-model transaction against the cell store",
	ArgsUsage: "<tx.json>",
	Flags: []cli.Flag{
		&utils.CellCacheSizeFlag,
		&utils.CellDbFlag,
		&utils.DummyInputFlag,
		&logger.LogLevelFlag,
	},
}

func resolve(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Resolve")

	var tx cell.Transaction
	if err = readJSON(cfg.ArgPath, &tx); err != nil {
		return fmt.Errorf("cannot read transaction; %v", err)
	}
	view := cell.NewTransactionView(tx)

	var dummy *types.InputLock
	if cfg.DummyInput != "" {
		dummy = new(types.InputLock)
		if err = readJSON(cfg.DummyInput, dummy); err != nil {
			return fmt.Errorf("cannot read dummy input; %v", err)
		}
	}

	store, err := cell.OpenCellStore(cfg.CellDb, true)
	if err != nil {
		return err
	}
	defer mustCloseCells(store)

	provider, err := cell.NewCachedProvider(store, cfg.CellCacheSize)
	if err != nil {
		return err
	}

	log.Infof("Resolving transaction %v", view.Hash())
	resolved, err := interop.ResolveTransaction(provider, view, dummy)
	if err != nil {
		return fmt.Errorf("cannot resolve transaction %v; %v", view.Hash(), err)
	}

	printResolved(ctx.App.Writer, resolved)
	return nil
}

// printResolved sends a table of all resolved cells to the writer.
func printResolved(w io.Writer, resolved *cell.ResolvedTransaction) {
	output(w, "Transaction:\t%s\n", resolved.Transaction.Hash().String())

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Kind", "Out Point", "Capacity", "Data Bytes", "Data Hash"})
	tbl.SetBorder(true)

	appendCells := func(kind string, cells []*cell.CellMeta) {
		for _, meta := range cells {
			dataHash := "-"
			if meta.MemCellDataHash != nil {
				dataHash = meta.MemCellDataHash.String()
			}
			tbl.Append([]string{
				kind,
				meta.OutPoint.String(),
				strconv.FormatUint(meta.CellOutput.Capacity, 10),
				strconv.FormatUint(meta.DataBytes, 10),
				dataHash,
			})
		}
	}
	appendCells("input", resolved.ResolvedInputs)
	appendCells("dep", resolved.ResolvedCellDeps)
	appendCells("dep group", resolved.ResolvedDepGroups)

	tbl.Render()
}
