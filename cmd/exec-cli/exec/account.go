package exec

import (
	"io"

	"github.com/axonweb3/axon-exec/executor"
	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/types"
	"github.com/axonweb3/axon-exec/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// AccountCommand prints the account stored for an address.
// build/axon-exec account --statedb <dir> "0xFC00FACE00000000000000000000000000000000"
var AccountCommand = cli.Command{
	Action:    accountInfo,
	Name:      "account",
	Usage:     "provides information about the target account",
	ArgsUsage: "<address>",
	Flags: []cli.Flag{
		&utils.GenesisFlag,
		&utils.StateDbFlag,
		&utils.StateDbCacheFlag,
		&utils.StateDbHandlesFlag,
		&logger.LogLevelFlag,
	},
}

func accountInfo(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.AddressArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Account")

	backend, err := openState(cfg, log)
	if err != nil {
		return err
	}
	defer mustCloseState(backend)

	acc := executor.MakeEvmExecutor(log).GetAccount(backend, cfg.ArgAddress)
	baseInfo(ctx.App.Writer, cfg.ArgAddress, acc, len(backend.Code(acc.CodeHash)))
	return nil
}

// baseInfo sends formatted base account information to the output writer.
func baseInfo(w io.Writer, addr common.Address, acc types.Account, codeLen int) {
	bold := color.New(color.Bold).SprintfFunc()

	output(w, "Account:\t%s\n", bold(addr.String()))
	output(w, "Balance:\t%s\n", bold(acc.Balance.String()))
	output(w, "Nonce:\t\t%s\n", bold("%d", acc.Nonce))
	output(w, "Code Hash:\t%s\n", bold(acc.CodeHash.String()))
	output(w, "Code Length:\t%s bytes\n", bold("%d", codeLen))
	output(w, "Storage Root:\t%s\n", bold(acc.StorageRoot.String()))
}
