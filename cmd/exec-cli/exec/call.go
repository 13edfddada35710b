package exec

import (
	"fmt"

	"github.com/axonweb3/axon-exec/executor"
	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/protocol"
	"github.com/axonweb3/axon-exec/utils"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

// CallCommand runs a read-only message call.
// build/axon-exec call --statedb <dir> --data 0x70a08231... <address>
var CallCommand = cli.Command{
	Action:    call,
	Name:      "call",
	Usage:     "runs a read-only call against a contract",
	ArgsUsage: "<address>",
	Flags: []cli.Flag{
		&utils.CallDataFlag,
		&utils.ChainIDFlag,
		&utils.CoinbaseFlag,
		&utils.GenesisFlag,
		&utils.NumberFlag,
		&utils.StateDbFlag,
		&utils.StateDbCacheFlag,
		&utils.StateDbHandlesFlag,
		&utils.TimestampFlag,
		&logger.LogLevelFlag,
	},
}

func call(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.AddressArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Call")

	var data []byte
	if cfg.CallData != "" {
		if data, err = hexutil.Decode(cfg.CallData); err != nil {
			return fmt.Errorf("invalid call data; %v", err)
		}
	}

	backend, err := openState(cfg, log)
	if err != nil {
		return err
	}
	defer mustCloseState(backend)

	protocol.InitGlobals(cfg.ChainID, backend.StateRoot())

	resp := executor.MakeEvmExecutor(log).Call(backend, cfg.ArgAddress, data)

	output(ctx.App.Writer, "Exit:\t\t%s\n", exitString(resp.ExitReason))
	output(ctx.App.Writer, "Return:\t\t%s\n", hexutil.Encode(resp.Ret))
	return nil
}
