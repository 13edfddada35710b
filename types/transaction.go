package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// TransactionAction is either a message call to To or, if To is nil, a
// contract creation.
type TransactionAction struct {
	To *common.Address
}

// CallAction creates an action calling the given address.
func CallAction(to common.Address) TransactionAction {
	return TransactionAction{To: &to}
}

// CreateAction creates a contract creation action.
func CreateAction() TransactionAction {
	return TransactionAction{}
}

func (a TransactionAction) IsCreate() bool {
	return a.To == nil
}

func (a TransactionAction) String() string {
	if a.To == nil {
		return "Create"
	}
	return fmt.Sprintf("Call(%v)", *a.To)
}

// SignedTransaction is an account-model transaction whose sender has already
// been authenticated.
type SignedTransaction struct {
	Hash       common.Hash
	Sender     common.Address
	ChainID    uint64
	Nonce      uint64
	Action     TransactionAction
	Value      *big.Int
	Input      []byte
	GasLimit   uint64
	GasPrice   *big.Int
	AccessList ethtypes.AccessList
}

// rlpTransaction is the field list hashed by ComputeHash.
type rlpTransaction struct {
	Sender     common.Address
	ChainID    uint64
	Nonce      uint64
	To         *common.Address `rlp:"nil"`
	Value      *big.Int
	Input      []byte
	GasLimit   uint64
	GasPrice   *big.Int
	AccessList ethtypes.AccessList
}

// ComputeHash derives the transaction hash from its content.
func (tx *SignedTransaction) ComputeHash() common.Hash {
	enc, err := rlp.EncodeToBytes(&rlpTransaction{
		Sender:     tx.Sender,
		ChainID:    tx.ChainID,
		Nonce:      tx.Nonce,
		To:         tx.Action.To,
		Value:      bigOrZero(tx.Value),
		Input:      tx.Input,
		GasLimit:   tx.GasLimit,
		GasPrice:   bigOrZero(tx.GasPrice),
		AccessList: tx.AccessList,
	})
	if err != nil {
		panic(fmt.Errorf("cannot encode transaction; %v", err))
	}
	return crypto.Keccak256Hash(enc)
}

type txJSON struct {
	Hash       *common.Hash        `json:"hash,omitempty"`
	Sender     common.Address      `json:"sender"`
	ChainID    hexutil.Uint64      `json:"chainId"`
	Nonce      hexutil.Uint64      `json:"nonce"`
	To         *common.Address     `json:"to"`
	Value      *hexutil.Big        `json:"value"`
	Input      hexutil.Bytes       `json:"input"`
	GasLimit   hexutil.Uint64      `json:"gas"`
	GasPrice   *hexutil.Big        `json:"gasPrice"`
	AccessList ethtypes.AccessList `json:"accessList,omitempty"`
}

func (tx SignedTransaction) MarshalJSON() ([]byte, error) {
	hash := tx.Hash
	return json.Marshal(&txJSON{
		Hash:       &hash,
		Sender:     tx.Sender,
		ChainID:    hexutil.Uint64(tx.ChainID),
		Nonce:      hexutil.Uint64(tx.Nonce),
		To:         tx.Action.To,
		Value:      (*hexutil.Big)(bigOrZero(tx.Value)),
		Input:      tx.Input,
		GasLimit:   hexutil.Uint64(tx.GasLimit),
		GasPrice:   (*hexutil.Big)(bigOrZero(tx.GasPrice)),
		AccessList: tx.AccessList,
	})
}

// UnmarshalJSON decodes a transaction; a missing hash is derived from the
// content.
func (tx *SignedTransaction) UnmarshalJSON(input []byte) error {
	var dec txJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	*tx = SignedTransaction{
		Sender:     dec.Sender,
		ChainID:    uint64(dec.ChainID),
		Nonce:      uint64(dec.Nonce),
		Action:     TransactionAction{To: dec.To},
		Value:      new(big.Int),
		Input:      dec.Input,
		GasLimit:   uint64(dec.GasLimit),
		GasPrice:   new(big.Int),
		AccessList: dec.AccessList,
	}
	if dec.Value != nil {
		tx.Value = dec.Value.ToInt()
	}
	if dec.GasPrice != nil {
		tx.GasPrice = dec.GasPrice.ToInt()
	}
	if dec.Hash != nil {
		tx.Hash = *dec.Hash
	} else {
		tx.Hash = tx.ComputeHash()
	}
	return nil
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
