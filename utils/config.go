package utils

import (
	"fmt"
	"math/big"
	"os"

	"github.com/axonweb3/axon-exec/logger"
	"github.com/c2h5oh/datasize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/urfave/cli/v2"
)

type ArgumentMode int

// An enums of argument modes used by subcommands
const (
	NoArgs     ArgumentMode = iota // requires no arguments
	PathArg                        // requires 1 argument: path to file
	AddressArg                     // requires 1 argument: account address
)

// DefaultChainID is the chain id used if none is configured.
const DefaultChainID uint64 = 2022

type Config struct {
	AppName     string
	CommandName string

	ArgPath    string         // path to file given as argument
	ArgAddress common.Address // address given as argument

	CallData       string         // hex encoded input of a read-only call
	CellCacheSize  int            // number of live cells kept in the cell cache
	CellDb         string         // directory of the cell store
	ChainID        uint64         // chain id used by the interpreter
	Coinbase       common.Address // block beneficiary seen by contracts
	CoinbaseHex    string         // raw value of the coinbase flag
	DbLogging      bool           // log every state backend operation
	DummyInput     string         // file with the lock of a virtual input
	Genesis        string         // genesis allocation used to prime an empty state
	LogLevel       string         // level of the logging of the app action
	Metrics        bool           // collect and print execution metrics
	Number         uint64         // block number seen by contracts
	Quiet          bool           // only print roots
	StateDb        string         // state directory, in-memory state if empty
	StateDbCache   int            // LevelDB cache of the state in MiB
	StateDbCacheHR string         // raw value of the cache flag, e.g. 256MB
	StateDbHandles int            // number of file handles of the state db
	Timestamp      uint64         // block timestamp seen by contracts

	ChainCfg *params.ChainConfig
}

type configContext struct {
	cfg *Config       // run configuration
	log logger.Logger // logger for printing logs in config functions
	ctx *cli.Context  // command line context for accessing flags and command line arguments
}

func NewConfigContext(cfg *Config, ctx *cli.Context) *configContext {
	return &configContext{
		log: logger.NewLogger(cfg.LogLevel, "Config"),
		cfg: cfg,
		ctx: ctx,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg, err := createConfigFromFlags(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot read flags; %v", err)
	}

	cc := NewConfigContext(cfg, ctx)

	if err = cc.parseArguments(ctx.Args().Slice(), mode); err != nil {
		return nil, fmt.Errorf("unable to parse cli arguments; %v", err)
	}

	if err = cc.adjustMissingConfigValues(); err != nil {
		return nil, fmt.Errorf("cannot adjust missing config values; %v", err)
	}

	cc.reportNewConfig()

	return cfg, nil
}

// parseArguments validates the positional arguments according to the mode
// in which the selected command runs and stores them into the config.
func (cc *configContext) parseArguments(args []string, mode ArgumentMode) error {
	switch mode {
	case NoArgs:
		if len(args) != 0 {
			return fmt.Errorf("command takes no arguments, got %d", len(args))
		}
	case PathArg:
		if len(args) != 1 {
			return fmt.Errorf("command requires exactly 1 argument (path), got %d", len(args))
		}
		if _, err := os.Stat(args[0]); err != nil {
			return fmt.Errorf("cannot access %v; %v", args[0], err)
		}
		cc.cfg.ArgPath = args[0]
	case AddressArg:
		if len(args) != 1 {
			return fmt.Errorf("command requires exactly 1 argument (address), got %d", len(args))
		}
		addr, err := ParseAddress(args[0])
		if err != nil {
			return err
		}
		cc.cfg.ArgAddress = addr
	default:
		return fmt.Errorf("unknown argument mode %d", mode)
	}
	return nil
}

func (cc *configContext) adjustMissingConfigValues() error {
	cfg := cc.cfg
	log := cc.log

	if cfg.ChainID == 0 {
		log.Warningf("ChainID (--%v) was not set; using default value %d", ChainIDFlag.Name, DefaultChainID)
		cfg.ChainID = DefaultChainID
	}
	cfg.ChainCfg = GetChainConfig(cfg.ChainID)

	if cfg.StateDbCacheHR != "" {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(cfg.StateDbCacheHR)); err != nil {
			return fmt.Errorf("invalid state db cache size %q; %v", cfg.StateDbCacheHR, err)
		}
		cfg.StateDbCache = int(size.MBytes())
	}

	if cfg.CoinbaseHex != "" {
		addr, err := ParseAddress(cfg.CoinbaseHex)
		if err != nil {
			return fmt.Errorf("invalid coinbase; %v", err)
		}
		cfg.Coinbase = addr
	}

	// an in-memory state can not be reopened, so a genesis is always applied
	if cfg.StateDb != "" && cfg.Genesis != "" && directoryExists(cfg.StateDb) {
		log.Warningf("Genesis %v is applied on top of existing state %v", cfg.Genesis, cfg.StateDb)
	}
	return nil
}

// reportNewConfig logs out the state of config in current run
func (cc *configContext) reportNewConfig() {
	cfg := cc.cfg
	log := cc.log

	log.Noticef("Run config:")
	log.Infof("Chain id: %v", cfg.ChainID)
	if cfg.StateDb == "" {
		log.Infof("State: in-memory")
	} else {
		log.Infof("State directory: %v (cache %d MiB, %d handles)", cfg.StateDb, cfg.StateDbCache, cfg.StateDbHandles)
	}
	if cfg.CellDb != "" {
		log.Infof("Cell store directory: %v (cache %d cells)", cfg.CellDb, cfg.CellCacheSize)
	}
	log.Infof("Block: number %d, timestamp %d, coinbase %v", cfg.Number, cfg.Timestamp, cfg.Coinbase)
	if cfg.DbLogging {
		log.Warning("Db logging enabled, reducing Tx throughput")
	}
}

// GetChainConfig returns the fixed rule-set of the interpreter: every
// Ethereum fork up to London is active from genesis, there is no per-block
// fork selection.
func GetChainConfig(chainID uint64) *params.ChainConfig {
	// Make a copy of the basic config before modifying it to avoid
	// unexpected side-effects and synchronization issues in parallel runs.
	chainConfig := *params.AllEthashProtocolChanges
	chainConfig.ChainID = new(big.Int).SetUint64(chainID)
	return &chainConfig
}

// ParseAddress parses a hex encoded account address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// directoryExists returns true if a directory exists
func directoryExists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return true
}
