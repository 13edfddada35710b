package executor

import "github.com/ethereum/go-ethereum/metrics"

// Metrics are only collected if go-ethereum metrics are enabled, otherwise
// these are no-ops.
var (
	txCounter       = metrics.NewRegisteredCounter("executor/txs", nil)
	failedTxCounter = metrics.NewRegisteredCounter("executor/txs/failed", nil)
	callCounter     = metrics.NewRegisteredCounter("executor/calls", nil)
	gasMeter        = metrics.NewRegisteredMeter("executor/gas", nil)
	execTimer       = metrics.NewRegisteredTimer("executor/exec", nil)
)
