package utils

import (
	"flag"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/axonweb3/axon-exec/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

func prepareMockCliContext(args ...string) *cli.Context {
	flagSet := flag.NewFlagSet("utils_config_test", 0)
	flagSet.Uint64(ChainIDFlag.Name, 5, "chain id")
	flagSet.String(StateDbCacheFlag.Name, "64MB", "cache")
	flagSet.String(CoinbaseFlag.Name, "0x00000000000000000000000000000000000000aa", "coinbase")
	flagSet.Uint64(NumberFlag.Name, 12, "number")
	flagSet.String(logger.LogLevelFlag.Name, "critical", "Level of the logging")
	_ = flagSet.Parse(args)

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)

	command := &cli.Command{
		Name: "test_command",
		Flags: []cli.Flag{
			&ChainIDFlag,
			&StateDbCacheFlag,
			&CoinbaseFlag,
			&NumberFlag,
			&logger.LogLevelFlag,
		},
	}
	ctx.Command = command

	return ctx
}

func TestUtilsConfig_GetChainConfig(t *testing.T) {
	chainConfig := GetChainConfig(7)

	if want, got := big.NewInt(7), chainConfig.ChainID; want.Cmp(got) != 0 {
		t.Fatalf("incorrect chain id, want %v, got %v", want, got)
	}
	rules := chainConfig.Rules(new(big.Int), false)
	if !rules.IsLondon || !rules.IsBerlin || !rules.IsIstanbul {
		t.Fatalf("London rule-set must be active from genesis, got %+v", rules)
	}

	// the shared default configuration must not be modified
	if other := GetChainConfig(8); other.ChainID.Uint64() != 8 || chainConfig.ChainID.Uint64() != 7 {
		t.Fatalf("chain configs are not independent")
	}
}

func TestUtilsConfig_NewConfig(t *testing.T) {
	ctx := prepareMockCliContext()

	cfg, err := NewConfig(ctx, NoArgs)
	if err != nil {
		t.Fatalf("Failed to create new config: %v", err)
	}
	if want, got := uint64(5), cfg.ChainID; want != got {
		t.Errorf("unexpected chain id, want %v, got %v", want, got)
	}
	if want, got := 64, cfg.StateDbCache; want != got {
		t.Errorf("unexpected cache size, want %v, got %v", want, got)
	}
	if want, got := common.HexToAddress("0xaa"), cfg.Coinbase; want != got {
		t.Errorf("unexpected coinbase, want %v, got %v", want, got)
	}
	if want, got := uint64(12), cfg.Number; want != got {
		t.Errorf("unexpected block number, want %v, got %v", want, got)
	}
	// flags not registered with the command fall back to their defaults
	if want, got := StateDbHandlesFlag.Value, cfg.StateDbHandles; want != got {
		t.Errorf("unexpected handles, want %v, got %v", want, got)
	}
	if cfg.ChainCfg == nil || cfg.ChainCfg.ChainID.Uint64() != 5 {
		t.Errorf("chain config not initialized")
	}
}

func TestUtilsConfig_InvalidCacheSizeIsRejected(t *testing.T) {
	ctx := prepareMockCliContext("--" + StateDbCacheFlag.Name + "=lots")

	if _, err := NewConfig(ctx, NoArgs); err == nil {
		t.Fatal("expected an error for an invalid cache size")
	}
}

func TestUtilsConfig_ArgumentModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	if err := os.WriteFile(path, []byte("[]"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfig(prepareMockCliContext(path), PathArg)
	if err != nil {
		t.Fatalf("failed to parse path argument: %v", err)
	}
	if want, got := path, cfg.ArgPath; want != got {
		t.Errorf("unexpected path, want %v, got %v", want, got)
	}

	addr := "0x0000000000000000000000000000000000000001"
	cfg, err = NewConfig(prepareMockCliContext(addr), AddressArg)
	if err != nil {
		t.Fatalf("failed to parse address argument: %v", err)
	}
	if want, got := common.HexToAddress(addr), cfg.ArgAddress; want != got {
		t.Errorf("unexpected address, want %v, got %v", want, got)
	}

	if _, err = NewConfig(prepareMockCliContext("not-an-address"), AddressArg); err == nil {
		t.Error("expected an error for an invalid address")
	}
	if _, err = NewConfig(prepareMockCliContext(path), NoArgs); err == nil {
		t.Error("expected an error for an unexpected argument")
	}
	if _, err = NewConfig(prepareMockCliContext(), PathArg); err == nil {
		t.Error("expected an error for a missing argument")
	}
}
