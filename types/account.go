package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// Account is the account-model ledger entry stored in the world state under
// the account's address.
type Account struct {
	Nonce       uint64
	Balance     *big.Int
	StorageRoot common.Hash
	CodeHash    common.Hash
}

// NewDefaultAccount returns the value reported for addresses without a record.
func NewDefaultAccount() Account {
	return Account{
		Nonce:       0,
		Balance:     new(big.Int),
		StorageRoot: EmptyRootHash,
		CodeHash:    EmptyCodeHash,
	}
}

// IsEmpty reports whether the account is empty as defined by EIP-161.
func (a *Account) IsEmpty() bool {
	return a.Nonce == 0 && (a.Balance == nil || a.Balance.Sign() == 0) && a.CodeHash == EmptyCodeHash
}

// Encode returns the RLP encoding of the account.
func (a *Account) Encode() []byte {
	if a.Balance == nil {
		a.Balance = new(big.Int)
	}
	b, err := rlp.EncodeToBytes(a)
	if err != nil {
		// all fields are encodable, this can not happen
		panic(fmt.Errorf("cannot encode account; %v", err))
	}
	return b
}

// DecodeAccount parses an RLP encoded account record.
func DecodeAccount(b []byte) (Account, error) {
	var acc Account
	if err := rlp.DecodeBytes(b, &acc); err != nil {
		return Account{}, fmt.Errorf("invalid account record; %v", err)
	}
	if acc.Balance == nil {
		acc.Balance = new(big.Int)
	}
	return acc, nil
}

func (a Account) String() string {
	return fmt.Sprintf("Account{nonce: %d, balance: %v, storage root: %v, code hash: %v}", a.Nonce, a.Balance, a.StorageRoot, a.CodeHash)
}
