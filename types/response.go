package types

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// TxResp is the outcome of executing one transaction.
type TxResp struct {
	ExitReason ExitReason
	Ret        []byte
	RemainGas  uint64
	GasUsed    uint64
	Logs       []*ethtypes.Log
}

// ExecResp is the outcome of executing a batch of transactions. TxResp holds
// one entry per input transaction, in input order.
type ExecResp struct {
	StateRoot   common.Hash
	ReceiptRoot common.Hash
	GasUsed     uint64
	TxResp      []*TxResp
}
