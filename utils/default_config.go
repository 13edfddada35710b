package utils

import (
	"fmt"
	"reflect"

	"github.com/axonweb3/axon-exec/logger"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,
	}

	// string of this map has to exactly match the name of the field in Config struct
	cfgFlags := map[string]interface{}{
		"CallData":       CallDataFlag,
		"CellCacheSize":  CellCacheSizeFlag,
		"CellDb":         CellDbFlag,
		"ChainID":        ChainIDFlag,
		"CoinbaseHex":    CoinbaseFlag,
		"DbLogging":      StateDbLoggingFlag,
		"DummyInput":     DummyInputFlag,
		"Genesis":        GenesisFlag,
		"LogLevel":       logger.LogLevelFlag,
		"Metrics":        MetricsFlag,
		"Number":         NumberFlag,
		"Quiet":          QuietFlag,
		"StateDb":        StateDbFlag,
		"StateDbCacheHR": StateDbCacheFlag,
		"StateDbHandles": StateDbHandlesFlag,
		"Timestamp":      TimestampFlag,
	}

	cfgValue := reflect.ValueOf(cfg).Elem()

	for cfgName, flag := range cfgFlags {
		value, flagName := getFlagValue(ctx, flag)

		field := cfgValue.FieldByName(cfgName)
		if !field.IsValid() {
			return nil, fmt.Errorf("field %s is not valid", flagName)
		}
		if !field.CanSet() {
			return nil, fmt.Errorf("field %s cannot be set", flagName)
		}

		field.Set(reflect.ValueOf(value))
	}

	return cfg, nil
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) (interface{}, string) {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name), f.Name
			}

		case cli.Uint64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Uint64(f.Name), f.Name
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name), f.Name
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name), f.Name
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name), f.Name
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value, f.Name
	case cli.Uint64Flag:
		return f.Value, f.Name
	case cli.StringFlag:
		return f.Value, f.Name
	case cli.PathFlag:
		return f.Value, f.Name
	case cli.BoolFlag:
		return f.Value, f.Name
	}
	return nil, ""
}
