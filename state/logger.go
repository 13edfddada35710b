package state

import (
	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// MakeLoggingBackend wraps the given Backend into a logging wrapper causing
// every operation to be logged at debug level.
func MakeLoggingBackend(backend Backend, log logger.Logger) Backend {
	return &loggingBackend{backend: backend, log: log}
}

type loggingBackend struct {
	backend Backend
	log     logger.Logger
}

func (s *loggingBackend) Get(key []byte) ([]byte, bool) {
	res, exists := s.backend.Get(key)
	s.log.Debugf("Get, %x, %t", key, exists)
	return res, exists
}

func (s *loggingBackend) Code(codeHash common.Hash) []byte {
	res := s.backend.Code(codeHash)
	s.log.Debugf("Code, %v, %d bytes", codeHash, len(res))
	return res
}

func (s *loggingBackend) Storage(addr common.Address, slot common.Hash) common.Hash {
	res := s.backend.Storage(addr, slot)
	s.log.Debugf("Storage, %v, %v, %v", addr, slot, res)
	return res
}

func (s *loggingBackend) Apply(values []Apply, logs []*ethtypes.Log, deleteEmpty bool) {
	s.log.Debugf("Apply, %d changes, %d logs, %t", len(values), len(logs), deleteEmpty)
	for _, change := range values {
		s.log.Debugf("  %v", change)
	}
	s.backend.Apply(values, logs, deleteEmpty)
}

func (s *loggingBackend) StateRoot() common.Hash {
	res := s.backend.StateRoot()
	s.log.Debugf("StateRoot, %v", res)
	return res
}

func (s *loggingBackend) GetLogs() []*ethtypes.Log {
	res := s.backend.GetLogs()
	s.log.Debugf("GetLogs, %d", len(res))
	return res
}

// Vicinity forwards to the wrapped backend, if it provides one.
func (s *loggingBackend) Vicinity() *types.Vicinity {
	if p, ok := s.backend.(VicinityProvider); ok {
		return p.Vicinity()
	}
	return nil
}
