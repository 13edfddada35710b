package exec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/axonweb3/axon-exec/executor"
	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/protocol"
	"github.com/axonweb3/axon-exec/types"
	"github.com/axonweb3/axon-exec/utils"
	"github.com/c2h5oh/datasize"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// ExecCommand executes a batch of signed transactions.
// build/axon-exec exec --statedb <dir> --genesis <alloc.json> <batch.json>
var ExecCommand = cli.Command{
	Action:    execBatch,
	Name:      "exec",
	Usage:     "executes a batch of transactions and commits the results",
	ArgsUsage: "<batch.json>",
	Description: `
The exec command executes the JSON list of signed transactions in the given
file strictly in order. Effects of successful transactions are committed to
the state; the resulting state and receipt roots are printed.`,
	Flags: []cli.Flag{
		&utils.ChainIDFlag,
		&utils.CoinbaseFlag,
		&utils.GenesisFlag,
		&utils.MetricsFlag,
		&utils.NumberFlag,
		&utils.QuietFlag,
		&utils.StateDbFlag,
		&utils.StateDbCacheFlag,
		&utils.StateDbHandlesFlag,
		&utils.StateDbLoggingFlag,
		&utils.TimestampFlag,
		&logger.LogLevelFlag,
	},
}

func execBatch(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Exec")

	var txs []*types.SignedTransaction
	if err = readJSON(cfg.ArgPath, &txs); err != nil {
		return fmt.Errorf("cannot read transactions; %v", err)
	}

	backend, err := openState(cfg, log)
	if err != nil {
		return err
	}
	defer mustCloseState(backend)

	protocol.InitGlobals(cfg.ChainID, backend.StateRoot())

	log.Noticef("Executing %d transactions", len(txs))
	resp := executor.MakeEvmExecutor(log).Exec(wrapState(cfg, backend), txs)
	protocol.PublishStateRoot(resp.StateRoot)

	if cfg.StateDb != "" {
		reportStateDbSize(cfg.StateDb, log)
	}

	printExecResp(ctx.App.Writer, txs, resp, cfg.Quiet)
	if cfg.Metrics {
		printMetrics(ctx.App.Writer, log)
	}
	return nil
}

// reportStateDbSize logs the disk usage of the state directory.
func reportStateDbSize(dir string, log logger.Logger) {
	size, err := utils.GetDirectorySize(dir)
	if err != nil {
		log.Warningf("Cannot measure state db size; %v", err)
		return
	}
	log.Noticef("State db size: %v", datasize.ByteSize(size).HR())
}

// printExecResp sends the roots and a table of per transaction results to
// the writer.
func printExecResp(w io.Writer, txs []*types.SignedTransaction, resp *types.ExecResp, quiet bool) {
	output(w, "State Root:\t%s\n", resp.StateRoot.String())
	output(w, "Receipt Root:\t%s\n", resp.ReceiptRoot.String())
	if quiet {
		return
	}
	output(w, "Gas Used:\t%d\n", resp.GasUsed)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Hash", "Exit", "Gas Used", "Remain Gas", "Logs", "Return"})
	tbl.SetBorder(true)
	for i, tx := range resp.TxResp {
		tbl.Append([]string{
			strconv.Itoa(i),
			txs[i].Hash.String(),
			exitString(tx.ExitReason),
			strconv.FormatUint(tx.GasUsed, 10),
			strconv.FormatUint(tx.RemainGas, 10),
			strconv.Itoa(len(tx.Logs)),
			hexutil.Encode(tx.Ret),
		})
	}
	tbl.Render()
}
