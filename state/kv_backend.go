package state

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/axonweb3/axon-exec/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
)

const (
	// AccountPrefix + address (160-bit) -> RLP encoded account
	AccountPrefix = 'a'

	// CodePrefix + code hash (256-bit) -> code
	CodePrefix = 'c'

	// StoragePrefix + address (160-bit) + slot (256-bit) -> value
	StoragePrefix = 's'
)

// KVBackend is a Backend keeping the flat world state in a key/value store.
// Roots are recomputed from the flat data on demand, there is no persistent
// trie.
type KVBackend struct {
	db ethdb.Database

	mu       sync.Mutex
	root     *common.Hash // cached state root, nil if stale
	logs     []*ethtypes.Log
	vicinity *types.Vicinity
}

// MakeMemoryBackend creates a backend without persistence.
func MakeMemoryBackend() *KVBackend {
	return &KVBackend{db: rawdb.NewMemoryDatabase()}
}

// MakeLevelDbBackend opens or creates a LevelDB backed state in the given
// directory. cache is the LevelDB cache size in MiB.
func MakeLevelDbBackend(dir string, cache int, handles int) (*KVBackend, error) {
	db, err := rawdb.NewLevelDBDatabase(dir, cache, handles, "axon", false)
	if err != nil {
		return nil, fmt.Errorf("cannot open state db at %s; %v", dir, err)
	}
	return &KVBackend{db: db}, nil
}

// AccountKey retrieves the DB key of the account with the given address.
func AccountKey(addr []byte) []byte {
	key := make([]byte, 0, 1+common.AddressLength)
	key = append(key, AccountPrefix)
	return append(key, addr...)
}

// CodeKey retrieves the DB key of the code with the given hash.
func CodeKey(codeHash common.Hash) []byte {
	key := make([]byte, 0, 1+common.HashLength)
	key = append(key, CodePrefix)
	return append(key, codeHash.Bytes()...)
}

// StorageKey retrieves the DB key of a storage slot.
func StorageKey(addr common.Address, slot common.Hash) []byte {
	key := storagePrefix(addr)
	return append(key, slot.Bytes()...)
}

func storagePrefix(addr common.Address) []byte {
	key := make([]byte, 0, 1+common.AddressLength+common.HashLength)
	key = append(key, StoragePrefix)
	return append(key, addr.Bytes()...)
}

// read fetches a raw value. Missing keys are reported as absent, any other
// database failure is fatal.
func (b *KVBackend) read(key []byte) ([]byte, bool) {
	has, err := b.db.Has(key)
	if err != nil {
		panic(fmt.Errorf("state db read failed; %v", err))
	}
	if !has {
		return nil, false
	}
	data, err := b.db.Get(key)
	if err != nil {
		panic(fmt.Errorf("state db read failed; %v", err))
	}
	return data, true
}

func (b *KVBackend) Get(key []byte) ([]byte, bool) {
	return b.read(AccountKey(key))
}

func (b *KVBackend) Code(codeHash common.Hash) []byte {
	if codeHash == types.EmptyCodeHash || codeHash == (common.Hash{}) {
		return nil
	}
	code, _ := b.read(CodeKey(codeHash))
	return code
}

func (b *KVBackend) Storage(addr common.Address, slot common.Hash) common.Hash {
	value, found := b.read(StorageKey(addr, slot))
	if !found {
		return common.Hash{}
	}
	return common.BytesToHash(value)
}

// Apply writes all changes through a single batch.
func (b *KVBackend) Apply(values []Apply, logs []*ethtypes.Log, deleteEmpty bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	batch := b.db.NewBatch()
	for _, change := range values {
		if change.Delete || (deleteEmpty && change.IsEmpty()) {
			b.deleteAccount(batch, change.Address)
			continue
		}
		b.modifyAccount(batch, change)
	}
	if err := batch.Write(); err != nil {
		panic(fmt.Errorf("failed to write state changes; %v", err))
	}

	b.logs = logs
	b.root = nil
}

func (b *KVBackend) deleteAccount(batch ethdb.Batch, addr common.Address) {
	must(batch.Delete(AccountKey(addr.Bytes())))
	b.forEachSlot(addr, func(slot, _ common.Hash) {
		must(batch.Delete(StorageKey(addr, slot)))
	})
}

func (b *KVBackend) modifyAccount(batch ethdb.Batch, change Apply) {
	addr := change.Address

	// merge the stored slots with the written ones to derive the new root
	slots := map[common.Hash]common.Hash{}
	b.forEachSlot(addr, func(slot, value common.Hash) {
		if change.ResetStorage {
			must(batch.Delete(StorageKey(addr, slot)))
		} else {
			slots[slot] = value
		}
	})
	for slot, value := range change.Storage {
		if value == (common.Hash{}) {
			delete(slots, slot)
			must(batch.Delete(StorageKey(addr, slot)))
			continue
		}
		slots[slot] = value
		must(batch.Put(StorageKey(addr, slot), value.Bytes()))
	}

	acc := types.Account{
		Nonce:       change.Nonce,
		Balance:     new(big.Int),
		StorageRoot: storageRoot(slots),
		CodeHash:    types.EmptyCodeHash,
	}
	if change.Balance != nil {
		acc.Balance.Set(change.Balance)
	}
	if len(change.Code) > 0 {
		acc.CodeHash = crypto.Keccak256Hash(change.Code)
		must(batch.Put(CodeKey(acc.CodeHash), change.Code))
	}
	must(batch.Put(AccountKey(addr.Bytes()), acc.Encode()))
}

func (b *KVBackend) forEachSlot(addr common.Address, visit func(slot, value common.Hash)) {
	prefix := storagePrefix(addr)
	it := b.db.NewIterator(prefix, nil)
	defer it.Release()
	for it.Next() {
		visit(common.BytesToHash(it.Key()[len(prefix):]), common.BytesToHash(it.Value()))
	}
	if err := it.Error(); err != nil {
		panic(fmt.Errorf("failed to iterate storage of %v; %v", addr, err))
	}
}

// StateRoot returns the root of the secure account trie over all stored
// accounts. The result is cached until the next Apply.
func (b *KVBackend) StateRoot() common.Hash {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.root != nil {
		return *b.root
	}

	entries := map[common.Hash][]byte{}
	it := b.db.NewIterator([]byte{AccountPrefix}, nil)
	for it.Next() {
		if len(it.Key()) != 1+common.AddressLength {
			continue
		}
		entries[crypto.Keccak256Hash(it.Key()[1:])] = common.CopyBytes(it.Value())
	}
	err := it.Error()
	it.Release()
	if err != nil {
		panic(fmt.Errorf("failed to iterate accounts; %v", err))
	}

	root := trieRoot(entries)
	b.root = &root
	return root
}

// GetLogs returns the logs recorded by the latest Apply and forgets them.
func (b *KVBackend) GetLogs() []*ethtypes.Log {
	b.mu.Lock()
	defer b.mu.Unlock()
	logs := b.logs
	b.logs = nil
	if logs == nil {
		return []*ethtypes.Log{}
	}
	return logs
}

// SetVicinity sets the block environment reported to the executor.
func (b *KVBackend) SetVicinity(v *types.Vicinity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.vicinity = v
}

func (b *KVBackend) Vicinity() *types.Vicinity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vicinity
}

func (b *KVBackend) Close() error {
	return b.db.Close()
}

// storageRoot computes the root of the secure storage trie of an account.
func storageRoot(slots map[common.Hash]common.Hash) common.Hash {
	entries := make(map[common.Hash][]byte, len(slots))
	for slot, value := range slots {
		enc, err := rlp.EncodeToBytes(common.TrimLeftZeroes(value[:]))
		if err != nil {
			panic(fmt.Errorf("cannot encode storage value; %v", err))
		}
		entries[crypto.Keccak256Hash(slot[:])] = enc
	}
	return trieRoot(entries)
}

// trieRoot builds a stack trie from the given entries. Keys must be
// inserted in ascending order.
func trieRoot(entries map[common.Hash][]byte) common.Hash {
	if len(entries) == 0 {
		return types.EmptyRootHash
	}
	keys := make([]common.Hash, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})

	tr := trie.NewStackTrie(nil)
	for _, key := range keys {
		if err := tr.TryUpdate(key[:], entries[key]); err != nil {
			panic(fmt.Errorf("failed to update stack trie; %v", err))
		}
	}
	return tr.Hash()
}

func must(err error) {
	if err != nil {
		panic(fmt.Errorf("state db write failed; %v", err))
	}
}
