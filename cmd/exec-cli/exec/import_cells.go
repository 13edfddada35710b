package exec

import (
	"fmt"

	"github.com/axonweb3/axon-exec/cell"
	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/utils"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

// ImportCellsCommand loads cells into the cell store.
// build/axon-exec import-cells --celldb <dir> <cells.json>
var ImportCellsCommand = cli.Command{
	Action:    importCells,
	Name:      "import-cells",
	Usage:     "imports cells of the cell-model chain into the cell store",
	ArgsUsage: "<cells.json>",
	Flags: []cli.Flag{
		&utils.CellDbFlag,
		&logger.LogLevelFlag,
	},
}

// importReportThreshold is the number of imported cells between progress
// reports.
const importReportThreshold = 100_000

// cellRecord is the JSON form of an imported cell. A dead cell is stored and
// marked as consumed.
type cellRecord struct {
	OutPoint cell.OutPoint         `json:"out_point"`
	Output   cell.CellOutput       `json:"output"`
	Data     hexutil.Bytes         `json:"data"`
	Info     *cell.TransactionInfo `json:"transaction_info,omitempty"`
	Dead     bool                  `json:"dead,omitempty"`
}

func importCells(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Import")

	var records []cellRecord
	if err = readJSON(cfg.ArgPath, &records); err != nil {
		return fmt.Errorf("cannot read cells; %v", err)
	}

	store, err := cell.OpenCellStore(cfg.CellDb, false)
	if err != nil {
		return err
	}
	defer mustCloseCells(store)

	var (
		dead    int
		tracker = utils.NewProgressTracker("cells", len(records), importReportThreshold, log)
	)
	for _, rec := range records {
		if err = store.Put(rec.OutPoint, rec.Output, rec.Data, rec.Info); err != nil {
			return err
		}
		if rec.Dead {
			if err = store.Kill(rec.OutPoint); err != nil {
				return err
			}
			dead++
		}
		tracker.Step()
	}

	log.Noticef("Imported %d cells (%d dead) into %v", len(records), dead, cfg.CellDb)
	output(ctx.App.Writer, "Imported:\t%d cells\n", len(records))
	return nil
}
