package state

//go:generate mockgen -source backend.go -destination backend_mocks.go -package state

import (
	"github.com/axonweb3/axon-exec/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Reader provides read access to committed world state.
type Reader interface {
	// Get returns the RLP encoded account stored under the given key, which
	// is the raw address. The flag is false if no such account exists.
	Get(key []byte) ([]byte, bool)
	// Code returns the byte code with the given hash, nil if unknown.
	Code(codeHash common.Hash) []byte
	// Storage returns the value of a storage slot, the zero hash if unset.
	Storage(addr common.Address, slot common.Hash) common.Hash
}

// Applier commits change sets produced by a successful transaction.
type Applier interface {
	// Apply writes the given account changes and records the logs emitted
	// alongside them. If deleteEmpty is set, accounts ending up empty are
	// removed. Storage engine failures are not recoverable and panic.
	Apply(values []Apply, logs []*ethtypes.Log, deleteEmpty bool)
}

// Rooter computes the commitment of the current world state.
type Rooter interface {
	StateRoot() common.Hash
}

// LogReader is the side channel through which the logs of the latest
// applied change set are handed out. Reading drains the channel.
type LogReader interface {
	GetLogs() []*ethtypes.Log
}

// Backend is the complete state store consumed by the executor.
type Backend interface {
	Reader
	Applier
	Rooter
	LogReader
}

// VicinityProvider is implemented by backends that know the block
// environment transactions are executed in.
type VicinityProvider interface {
	Vicinity() *types.Vicinity
}
