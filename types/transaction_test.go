package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestSignedTransaction_JsonWithoutToIsCreation(t *testing.T) {
	input := `{"sender":"0x0000000000000000000000000000000000000001","chainId":"0x5","nonce":"0x0","value":"0x10","input":"0x6000","gas":"0x5208"}`
	var tx SignedTransaction
	if err := json.Unmarshal([]byte(input), &tx); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !tx.Action.IsCreate() {
		t.Errorf("expected a creation, got %v", tx.Action)
	}
	if want, got := uint64(21000), tx.GasLimit; want != got {
		t.Errorf("unexpected gas limit, want %d, got %d", want, got)
	}
	if want, got := big.NewInt(16), tx.Value; want.Cmp(got) != 0 {
		t.Errorf("unexpected value, want %v, got %v", want, got)
	}
	if tx.GasPrice == nil || tx.GasPrice.Sign() != 0 {
		t.Errorf("missing gas price must default to zero, got %v", tx.GasPrice)
	}
	if want, got := tx.ComputeHash(), tx.Hash; want != got {
		t.Errorf("missing hash must be derived, want %v, got %v", want, got)
	}
}

func TestSignedTransaction_HashDependsOnAction(t *testing.T) {
	call := SignedTransaction{Sender: common.Address{1}, Action: CallAction(common.Address{2}), Value: big.NewInt(1)}
	create := call
	create.Action = CreateAction()
	if call.ComputeHash() == create.ComputeHash() {
		t.Errorf("call and create must hash differently")
	}
}
