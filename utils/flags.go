package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options shared by the execution and resolution commands.
var (
	CallDataFlag = cli.StringFlag{
		Name:  "data",
		Usage: "hex encoded input of the read-only call",
	}
	CellCacheSizeFlag = cli.IntFlag{
		Name:  "cell-cache",
		Usage: "number of live cells kept in memory while resolving",
		Value: 4096,
	}
	CellDbFlag = cli.PathFlag{
		Name:  "celldb",
		Usage: "sets the directory of the cell store",
		Value: "celldb",
	}
	ChainIDFlag = cli.Uint64Flag{
		Name:  "chainid",
		Usage: "chain id seen by the interpreter",
		Value: DefaultChainID,
	}
	CoinbaseFlag = cli.StringFlag{
		Name:  "coinbase",
		Usage: "block beneficiary address seen by contracts",
	}
	DummyInputFlag = cli.PathFlag{
		Name:  "dummy-input",
		Usage: "JSON file with the lock substituted for a virtual input",
	}
	GenesisFlag = cli.PathFlag{
		Name:  "genesis",
		Usage: "JSON genesis allocation used to prime the state",
	}
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "collect execution metrics and print them after the run",
	}
	NumberFlag = cli.Uint64Flag{
		Name:  "number",
		Usage: "block number seen by contracts",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "only print the resulting roots",
	}
	StateDbFlag = cli.PathFlag{
		Name:  "statedb",
		Usage: "sets the state directory; an in-memory state is used if not set",
	}
	StateDbCacheFlag = cli.StringFlag{
		Name:  "statedb-cache",
		Usage: "LevelDB cache size of the state, e.g. 256MB",
		Value: "256MB",
	}
	StateDbHandlesFlag = cli.IntFlag{
		Name:  "statedb-handles",
		Usage: "number of open file handles of the state db",
		Value: 256,
	}
	StateDbLoggingFlag = cli.BoolFlag{
		Name:  "db-logging",
		Usage: "enable logging of all state backend operations",
	}
	TimestampFlag = cli.Uint64Flag{
		Name:  "timestamp",
		Usage: "block timestamp seen by contracts",
	}
)
