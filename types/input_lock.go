package types

import (
	"github.com/axonweb3/axon-exec/cell"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// shannonsPerByte converts occupied bytes into capacity units.
const shannonsPerByte = 100_000_000

// InputLock describes the synthetic cell substituted for a virtual input.
type InputLock struct {
	LockCodeHash common.Hash         `json:"lock_code_hash"`
	LockArgs     hexutil.Bytes       `json:"lock_args"`
	HashType     cell.ScriptHashType `json:"hash_type"`
	Capacity     uint64              `json:"capacity"`
	Data         hexutil.Bytes       `json:"data"`
}

// LockScript builds the lock script of the synthetic cell.
func (l *InputLock) LockScript() cell.Script {
	return cell.Script{
		CodeHash: l.LockCodeHash,
		HashType: l.HashType,
		Args:     append(hexutil.Bytes{}, l.LockArgs...),
	}
}

// TotalCapacity is the capacity of the synthetic cell. Without an explicit
// capacity the cell holds exactly the capacity it occupies: the capacity
// field, the lock script and the data.
func (l *InputLock) TotalCapacity() uint64 {
	if l.Capacity != 0 {
		return l.Capacity
	}
	occupied := uint64(8 + common.HashLength + 1 + len(l.LockArgs) + len(l.Data))
	return occupied * shannonsPerByte
}
