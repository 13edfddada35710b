package types

import (
	"math/big"
	"testing"

	"github.com/axonweb3/axon-exec/cell"
	"github.com/ethereum/go-ethereum/common"
)

func TestAccount_DefaultAccountIsEmpty(t *testing.T) {
	acc := NewDefaultAccount()
	if !acc.IsEmpty() {
		t.Errorf("default account must be empty: %v", acc)
	}
	if want, got := EmptyRootHash, acc.StorageRoot; want != got {
		t.Errorf("unexpected storage root, want %v, got %v", want, got)
	}
}

func TestAccount_EncodedAccountDecodes(t *testing.T) {
	acc := Account{Nonce: 3, Balance: big.NewInt(1000), StorageRoot: common.Hash{1}, CodeHash: common.Hash{2}}
	got, err := DecodeAccount(acc.Encode())
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if got.Nonce != acc.Nonce || got.Balance.Cmp(acc.Balance) != 0 || got.StorageRoot != acc.StorageRoot || got.CodeHash != acc.CodeHash {
		t.Errorf("unexpected account, want %v, got %v", acc, got)
	}
}

func TestAccount_GarbageIsRejected(t *testing.T) {
	if _, err := DecodeAccount([]byte{0x01, 0x02}); err == nil {
		t.Errorf("decoding garbage must fail")
	}
}

func TestInputLock_CapacityDefaultsToOccupiedCapacity(t *testing.T) {
	lock := InputLock{LockArgs: []byte{1, 2, 3}, Data: []byte{4, 5}, HashType: cell.HashTypeType}
	if want, got := uint64(8+32+1+3+2)*shannonsPerByte, lock.TotalCapacity(); want != got {
		t.Errorf("unexpected capacity, want %d, got %d", want, got)
	}
	lock.Capacity = 7
	if want, got := uint64(7), lock.TotalCapacity(); want != got {
		t.Errorf("unexpected capacity, want %d, got %d", want, got)
	}
	script := lock.LockScript()
	if script.HashType != cell.HashTypeType || len(script.Args) != 3 {
		t.Errorf("unexpected lock script %v", script)
	}
}
