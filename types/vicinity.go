package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Vicinity is the block environment visible to executed contracts.
type Vicinity struct {
	BlockNumber uint64
	Timestamp   uint64
	Coinbase    common.Address
	Difficulty  *big.Int
	GasPrice    *big.Int
	BaseFee     *big.Int
	BlockHashes map[uint64]common.Hash
}

// BlockHash returns the hash of the given block, or the zero hash if the
// vicinity does not know it.
func (v *Vicinity) BlockHash(number uint64) common.Hash {
	if v.BlockHashes == nil {
		return common.Hash{}
	}
	return v.BlockHashes[number]
}
