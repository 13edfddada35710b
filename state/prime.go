package state

import (
	"math/big"

	"github.com/axonweb3/axon-exec/types"
	"github.com/ethereum/go-ethereum/core"
)

// PrimeBackend seeds the backend with the accounts of a genesis allocation.
// Existing accounts listed in the allocation are overwritten.
func PrimeBackend(backend Applier, alloc core.GenesisAlloc) {
	values := make([]Apply, 0, len(alloc))
	for addr, account := range alloc {
		balance := new(big.Int)
		if account.Balance != nil {
			balance.Set(account.Balance)
		}
		values = append(values, Apply{
			Address:      addr,
			Nonce:        account.Nonce,
			Balance:      balance,
			Code:         account.Code,
			Storage:      account.Storage,
			ResetStorage: true,
		})
	}
	backend.Apply(values, nil, false)
}

// ReadAccount returns the account stored for the given address, or the
// default account if there is none.
func ReadAccount(reader Reader, key []byte) (types.Account, error) {
	data, exists := reader.Get(key)
	if !exists {
		return types.NewDefaultAccount(), nil
	}
	return types.DecodeAccount(data)
}
