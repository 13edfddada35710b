package state

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	"github.com/axonweb3/axon-exec/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
)

// Overlay is the transient state of a single transaction. It implements the
// interpreter's vm.StateDB on top of a committed state Reader, keeping every
// modification in a chain of snapshots so that nested calls can be reverted.
// The net effect is extracted by Deconstruct; the Reader is never modified.
type Overlay struct {
	base            Reader
	accounts        map[common.Address]*types.Account // decoded base accounts, nil if missing
	state           *snapshot
	snapshotCounter int
	txHash          common.Hash
	txIndex         int
}

var _ vm.StateDB = (*Overlay)(nil)

type slot struct {
	addr common.Address
	key  common.Hash
}

type snapshot struct {
	parent *snapshot
	id     int

	touched          map[common.Address]int // Set of referenced accounts
	created          map[common.Address]int // Set of (re-)created accounts
	balances         map[common.Address]*big.Int
	nonces           map[common.Address]uint64
	codes            map[common.Address][]byte
	suicided         map[common.Address]int // Set of destructed accounts
	storage          map[slot]common.Hash
	accessedAccounts map[common.Address]int
	accessedSlots    map[slot]int
	logs             []*ethtypes.Log
	refund           uint64
}

func makeSnapshot(parent *snapshot, id int) *snapshot {
	var refund uint64
	if parent != nil {
		refund = parent.refund
	}
	return &snapshot{
		parent:           parent,
		id:               id,
		touched:          map[common.Address]int{},
		created:          map[common.Address]int{},
		balances:         map[common.Address]*big.Int{},
		nonces:           map[common.Address]uint64{},
		codes:            map[common.Address][]byte{},
		suicided:         map[common.Address]int{},
		storage:          map[slot]common.Hash{},
		accessedAccounts: map[common.Address]int{},
		accessedSlots:    map[slot]int{},
		logs:             make([]*ethtypes.Log, 0),
		refund:           refund,
	}
}

// MakeOverlay creates an empty overlay over the given committed state.
func MakeOverlay(base Reader) *Overlay {
	return &Overlay{
		base:     base,
		accounts: map[common.Address]*types.Account{},
		state:    makeSnapshot(nil, 0),
	}
}

// Prepare sets the transaction the emitted logs are attributed to.
func (db *Overlay) Prepare(txHash common.Hash, index int) {
	db.txHash = txHash
	db.txIndex = index
}

// baseAccount loads the committed record of the given account. A record
// that can not be decoded is a corrupted database and panics.
func (db *Overlay) baseAccount(addr common.Address) *types.Account {
	if acc, cached := db.accounts[addr]; cached {
		return acc
	}
	var res *types.Account
	if data, exists := db.base.Get(addr.Bytes()); exists {
		acc, err := types.DecodeAccount(data)
		if err != nil {
			panic(fmt.Errorf("corrupted account record of %v; %v", addr, err))
		}
		res = &acc
	}
	db.accounts[addr] = res
	return res
}

// CreateAccount (re-)creates an account: nonce, code and storage are reset
// while the balance is carried over.
func (db *Overlay) CreateAccount(addr common.Address) {
	db.state.touched[addr] = 0
	db.state.created[addr] = 0
	delete(db.state.nonces, addr)
	delete(db.state.codes, addr)
	delete(db.state.suicided, addr)
	for key := range db.state.storage {
		if key.addr == addr {
			delete(db.state.storage, key)
		}
	}
}

func (db *Overlay) wasCreated(addr common.Address) bool {
	for state := db.state; state != nil; state = state.parent {
		if _, exists := state.created[addr]; exists {
			return true
		}
	}
	return false
}

func (db *Overlay) SubBalance(addr common.Address, value *big.Int) {
	db.state.touched[addr] = 0
	if value.Sign() == 0 {
		return
	}
	db.state.balances[addr] = new(big.Int).Sub(db.GetBalance(addr), value)
}

// AddBalance also marks the account as touched for zero amounts, which is
// what makes empty accounts subject to deletion.
func (db *Overlay) AddBalance(addr common.Address, value *big.Int) {
	db.state.touched[addr] = 0
	if value.Sign() == 0 {
		return
	}
	db.state.balances[addr] = new(big.Int).Add(db.GetBalance(addr), value)
}

func (db *Overlay) GetBalance(addr common.Address) *big.Int {
	for state := db.state; state != nil; state = state.parent {
		val, exists := state.balances[addr]
		if exists {
			return new(big.Int).Set(val)
		}
	}
	account := db.baseAccount(addr)
	if account == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(account.Balance)
}

func (db *Overlay) GetNonce(addr common.Address) uint64 {
	for state := db.state; state != nil; state = state.parent {
		if val, exists := state.nonces[addr]; exists {
			return val
		}
		if _, exists := state.created[addr]; exists {
			return 0
		}
	}
	account := db.baseAccount(addr)
	if account == nil {
		return 0
	}
	return account.Nonce
}

func (db *Overlay) SetNonce(addr common.Address, value uint64) {
	db.state.touched[addr] = 0
	db.state.nonces[addr] = value
}

// GetCodeHash returns the zero hash for accounts that do not exist.
func (db *Overlay) GetCodeHash(addr common.Address) common.Hash {
	if !db.Exist(addr) {
		return common.Hash{}
	}
	code := db.GetCode(addr)
	if len(code) == 0 {
		return types.EmptyCodeHash
	}
	return crypto.Keccak256Hash(code)
}

func (db *Overlay) GetCode(addr common.Address) []byte {
	for state := db.state; state != nil; state = state.parent {
		if val, exists := state.codes[addr]; exists {
			return val
		}
		if _, exists := state.created[addr]; exists {
			return nil
		}
	}
	account := db.baseAccount(addr)
	if account == nil {
		return nil
	}
	return db.base.Code(account.CodeHash)
}

func (db *Overlay) SetCode(addr common.Address, code []byte) {
	db.state.touched[addr] = 0
	db.state.codes[addr] = code
}

func (db *Overlay) GetCodeSize(addr common.Address) int {
	return len(db.GetCode(addr))
}

func (db *Overlay) AddRefund(gas uint64) {
	db.state.refund += gas
}

func (db *Overlay) SubRefund(gas uint64) {
	if gas > db.state.refund {
		panic(fmt.Errorf("refund counter below zero (gas: %d > refund: %d)", gas, db.state.refund))
	}
	db.state.refund -= gas
}

func (db *Overlay) GetRefund() uint64 {
	return db.state.refund
}

// GetCommittedState returns the value a slot had before the transaction.
func (db *Overlay) GetCommittedState(addr common.Address, key common.Hash) common.Hash {
	if db.wasCreated(addr) {
		return common.Hash{}
	}
	return db.base.Storage(addr, key)
}

func (db *Overlay) GetState(addr common.Address, key common.Hash) common.Hash {
	slot := slot{addr, key}
	for state := db.state; state != nil; state = state.parent {
		if val, exists := state.storage[slot]; exists {
			return val
		}
		if _, exists := state.created[addr]; exists {
			return common.Hash{}
		}
	}
	return db.base.Storage(addr, key)
}

func (db *Overlay) SetState(addr common.Address, key common.Hash, value common.Hash) {
	db.state.touched[addr] = 0
	db.state.storage[slot{addr, key}] = value
}

func (db *Overlay) Suicide(addr common.Address) bool {
	if !db.Exist(addr) {
		return false
	}
	db.state.touched[addr] = 0
	db.state.suicided[addr] = 0
	db.state.balances[addr] = new(big.Int)
	return true
}

func (db *Overlay) HasSuicided(addr common.Address) bool {
	for state := db.state; state != nil; state = state.parent {
		if _, exists := state.suicided[addr]; exists {
			return true
		}
		if _, exists := state.created[addr]; exists {
			return false
		}
	}
	return false
}

func (db *Overlay) Exist(addr common.Address) bool {
	for state := db.state; state != nil; state = state.parent {
		if _, exists := state.touched[addr]; exists {
			return true
		}
	}
	return db.baseAccount(addr) != nil
}

func (db *Overlay) Empty(addr common.Address) bool {
	return db.GetNonce(addr) == 0 && db.GetBalance(addr).Sign() == 0 && db.GetCodeSize(addr) == 0
}

func (db *Overlay) PrepareAccessList(sender common.Address, dest *common.Address, precompiles []common.Address, txAccesses ethtypes.AccessList) {
	db.AddAddressToAccessList(sender)
	if dest != nil {
		db.AddAddressToAccessList(*dest)
		// If it's a create-tx, the destination will be added inside evm.create
	}
	for _, addr := range precompiles {
		db.AddAddressToAccessList(addr)
	}
	for _, el := range txAccesses {
		db.AddAddressToAccessList(el.Address)
		for _, key := range el.StorageKeys {
			db.AddSlotToAccessList(el.Address, key)
		}
	}
}

func (db *Overlay) AddressInAccessList(addr common.Address) bool {
	for state := db.state; state != nil; state = state.parent {
		if _, present := state.accessedAccounts[addr]; present {
			return true
		}
	}
	return false
}

func (db *Overlay) SlotInAccessList(addr common.Address, key common.Hash) (addressOk bool, slotOk bool) {
	addressOk = db.AddressInAccessList(addr)
	id := slot{addr, key}
	for state := db.state; state != nil; state = state.parent {
		if _, present := state.accessedSlots[id]; present {
			slotOk = true
			return
		}
	}
	return
}

func (db *Overlay) AddAddressToAccessList(addr common.Address) {
	db.state.accessedAccounts[addr] = 0
}

func (db *Overlay) AddSlotToAccessList(addr common.Address, key common.Hash) {
	db.AddAddressToAccessList(addr)
	db.state.accessedSlots[slot{addr, key}] = 0
}

func (db *Overlay) RevertToSnapshot(id int) {
	for ; db.state != nil && db.state.id != id; db.state = db.state.parent {
		// nothing
	}
	if db.state == nil {
		panic(fmt.Errorf("unable to revert to snapshot %d", id))
	}
}

// Snapshot freezes the current layer and continues in a fresh one.
func (db *Overlay) Snapshot() int {
	res := db.state.id
	db.snapshotCounter++
	db.state = makeSnapshot(db.state, db.snapshotCounter)
	return res
}

func (db *Overlay) AddLog(log *ethtypes.Log) {
	log.TxHash = db.txHash
	log.TxIndex = uint(db.txIndex)
	db.state.logs = append(db.state.logs, log)
}

func (db *Overlay) AddPreimage(common.Hash, []byte) {
	// ignored
}

// ForEachStorage visits the slots written by the transaction; committed
// slots are not enumerable through a Reader.
func (db *Overlay) ForEachStorage(addr common.Address, cb func(common.Hash, common.Hash) bool) error {
	for key, value := range db.storageOf(addr) {
		if !cb(key, value) {
			return nil
		}
	}
	return nil
}

func collectLogs(s *snapshot) []*ethtypes.Log {
	if s == nil {
		return []*ethtypes.Log{}
	}
	logs := collectLogs(s.parent)
	logs = append(logs, s.logs...)
	return logs
}

// GetLogs returns the logs emitted so far, in emission order and indexed
// within the transaction.
func (db *Overlay) GetLogs() []*ethtypes.Log {
	logs := collectLogs(db.state)
	for i, log := range logs {
		log.Index = uint(i)
	}
	return logs
}

// storageOf collects the net storage writes of an account, stopping at the
// layer the account was last created in.
func (db *Overlay) storageOf(addr common.Address) map[common.Hash]common.Hash {
	res := map[common.Hash]common.Hash{}
	for state := db.state; state != nil; state = state.parent {
		for key, value := range state.storage {
			if key.addr != addr {
				continue
			}
			if _, reported := res[key.key]; !reported {
				res[key.key] = value
			}
		}
		if _, exists := state.created[addr]; exists {
			break
		}
	}
	return res
}

// Deconstruct extracts the net effect of the transaction: one Apply per
// touched account, ordered by address, and the emitted logs.
func (db *Overlay) Deconstruct() ([]Apply, []*ethtypes.Log) {
	touched := map[common.Address]int{}
	for state := db.state; state != nil; state = state.parent {
		for addr := range state.touched {
			touched[addr] = 0
		}
	}

	addrs := make([]common.Address, 0, len(touched))
	for addr := range touched {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})

	res := make([]Apply, 0, len(addrs))
	for _, addr := range addrs {
		if db.HasSuicided(addr) {
			res = append(res, Apply{Address: addr, Delete: true})
			continue
		}
		res = append(res, Apply{
			Address:      addr,
			Nonce:        db.GetNonce(addr),
			Balance:      db.GetBalance(addr),
			Code:         db.GetCode(addr),
			Storage:      db.storageOf(addr),
			ResetStorage: db.wasCreated(addr),
		})
	}
	return res, db.GetLogs()
}
