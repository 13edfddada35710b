// Package protocol holds the process-wide chain parameters shared by the
// execution and interoperation components.
package protocol

import (
	"github.com/axonweb3/axon-exec/cell"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/atomic"
)

var (
	// CellVerifierCodeHash identifies the privileged script verifying cells
	// imported from the cell-model chain.
	CellVerifierCodeHash = crypto.Keccak256Hash([]byte("AxonCellVerifier"))

	// DummyInputOutPoint is the sentinel out-point marking a virtual input
	// whose cell is supplied by the caller instead of the ledger.
	DummyInputOutPoint = cell.OutPoint{
		TxHash: crypto.Keccak256Hash([]byte("DummyInputOutpointTxHash")),
		Index:  0,
	}
)

var (
	initialized      atomic.Bool
	chainID          atomic.Uint64
	currentStateRoot atomic.Value
)

// InitGlobals publishes the chain id and the state root at startup. It must
// be called before other subsystems read them.
func InitGlobals(id uint64, stateRoot common.Hash) {
	chainID.Store(id)
	currentStateRoot.Store(stateRoot)
	initialized.Store(true)
}

// Initialized reports whether InitGlobals was called.
func Initialized() bool {
	return initialized.Load()
}

// ChainID returns the published chain id.
func ChainID() uint64 {
	return chainID.Load()
}

// SetChainID publishes a new chain id.
func SetChainID(id uint64) {
	chainID.Store(id)
}

// CurrentStateRoot returns the last published state root.
func CurrentStateRoot() common.Hash {
	root, ok := currentStateRoot.Load().(common.Hash)
	if !ok {
		return common.Hash{}
	}
	return root
}

// PublishStateRoot makes the given root visible as the current state root.
func PublishStateRoot(root common.Hash) {
	currentStateRoot.Store(root)
}
