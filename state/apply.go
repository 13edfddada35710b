package state

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Apply is the net effect of a transaction on a single account.
type Apply struct {
	Address common.Address

	// Delete marks a destroyed account; all other fields are ignored.
	Delete bool

	Nonce   uint64
	Balance *big.Int

	// Code is the full code of the account after the transaction.
	Code []byte

	// Storage holds the written slots; zero values clear a slot.
	Storage map[common.Hash]common.Hash

	// ResetStorage drops all previously stored slots before Storage is
	// written, as required for accounts (re-)created by the transaction.
	ResetStorage bool
}

func (a Apply) String() string {
	if a.Delete {
		return fmt.Sprintf("delete %v", a.Address)
	}
	return fmt.Sprintf("modify %v: nonce %d, balance %v, code %d bytes, %d slots, reset %t",
		a.Address, a.Nonce, a.Balance, len(a.Code), len(a.Storage), a.ResetStorage)
}

// IsEmpty reports whether the account left behind by this change is empty
// in the sense of EIP-161.
func (a Apply) IsEmpty() bool {
	return a.Nonce == 0 && (a.Balance == nil || a.Balance.Sign() == 0) && len(a.Code) == 0
}
