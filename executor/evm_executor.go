package executor

import (
	"math"
	"math/big"
	"time"

	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/merkle"
	"github.com/axonweb3/axon-exec/protocol"
	"github.com/axonweb3/axon-exec/state"
	"github.com/axonweb3/axon-exec/types"
	"github.com/axonweb3/axon-exec/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
)

// Executor runs account-model transactions against a state backend.
type Executor interface {
	// Call simulates a zero-value message call from the zero address with
	// unlimited gas. The backend is never modified and no gas is reported.
	Call(backend state.Backend, addr common.Address, data []byte) *types.TxResp

	// Exec applies the given transactions strictly in order. Effects of a
	// transaction are committed to the backend only if it succeeded.
	Exec(backend state.Backend, txs []*types.SignedTransaction) *types.ExecResp

	// GetAccount returns the account stored for the given address, or the
	// default account. A corrupted record is fatal.
	GetAccount(backend state.Reader, addr common.Address) types.Account
}

// MakeEvmExecutor creates an Executor running the go-ethereum interpreter
// with the London rule-set.
func MakeEvmExecutor(log logger.Logger) Executor {
	return &evmExecutor{
		vmCfg: vm.Config{NoBaseFee: true},
		log:   log,
	}
}

type evmExecutor struct {
	vmCfg vm.Config
	log   logger.Logger
}

func (e *evmExecutor) Call(backend state.Backend, addr common.Address, data []byte) *types.TxResp {
	var (
		db       = state.MakeOverlay(backend)
		sender   = common.Address{}
		chainCfg = utils.GetChainConfig(protocol.ChainID())
		evm      = e.newEvm(backend, db, chainCfg, sender, nil)
		rules    = chainCfg.Rules(evm.Context.BlockNumber, false)
	)
	db.PrepareAccessList(sender, &addr, vm.ActivePrecompiles(rules), nil)

	ret, _, err := evm.Call(vm.AccountRef(sender), addr, data, math.MaxUint64, new(big.Int))
	callCounter.Inc(1)

	return &types.TxResp{
		ExitReason: exitReason(err),
		Ret:        ret,
		RemainGas:  0,
		GasUsed:    0,
		Logs:       []*ethtypes.Log{},
	}
}

func (e *evmExecutor) Exec(backend state.Backend, txs []*types.SignedTransaction) *types.ExecResp {
	start := time.Now()

	// logs of earlier applies do not belong to this batch
	backend.GetLogs()

	var (
		res      = make([]*types.TxResp, 0, len(txs))
		hashes   = make([]common.Hash, 0, len(txs))
		gasUsed  uint64
		failures int
	)
	for i, tx := range txs {
		resp := e.innerExec(backend, tx, i)
		resp.Logs = backend.GetLogs()

		if !resp.ExitReason.IsSucceed() {
			failures++
			e.log.Infof("transaction %d (%v) did not succeed: %v", i, tx.Hash, resp.ExitReason)
		}
		gasUsed += resp.GasUsed
		hashes = append(hashes, crypto.Keccak256Hash(resp.Ret))
		res = append(res, resp)
	}

	receiptRoot, ok := merkle.FromHashes(hashes).RootHash()
	if !ok {
		receiptRoot = common.Hash{}
	}
	stateRoot := backend.StateRoot()

	txCounter.Inc(int64(len(txs)))
	failedTxCounter.Inc(int64(failures))
	gasMeter.Mark(int64(gasUsed))
	execTimer.UpdateSince(start)

	e.log.Debugf("executed %d transactions (%d failed), gas used %d, state root %v", len(txs), failures, gasUsed, stateRoot)

	return &types.ExecResp{
		StateRoot:   stateRoot,
		ReceiptRoot: receiptRoot,
		GasUsed:     gasUsed,
		TxResp:      res,
	}
}

// innerExec runs a single transaction and applies its effects on success.
// The logs of the result are left empty.
func (e *evmExecutor) innerExec(backend state.Backend, tx *types.SignedTransaction, index int) *types.TxResp {
	var (
		db       = state.MakeOverlay(backend)
		chainCfg = utils.GetChainConfig(protocol.ChainID())
		evm      = e.newEvm(backend, db, chainCfg, tx.Sender, tx.GasPrice)
		rules    = chainCfg.Rules(evm.Context.BlockNumber, false)
		gasLimit = tx.GasLimit
		value    = tx.Value
		isCreate = tx.Action.IsCreate()
	)
	if value == nil {
		value = new(big.Int)
	}
	db.Prepare(tx.Hash, index)

	resp := &types.TxResp{Logs: []*ethtypes.Log{}}

	intrinsic, err := core.IntrinsicGas(tx.Input, tx.AccessList, isCreate, rules.IsHomestead, rules.IsIstanbul)
	if err != nil || intrinsic > gasLimit {
		resp.ExitReason = types.Failed(types.OutOfGas)
		resp.GasUsed = gasLimit
		return resp
	}

	db.PrepareAccessList(tx.Sender, tx.Action.To, vm.ActivePrecompiles(rules), tx.AccessList)

	var (
		ret      []byte
		leftover uint64
	)
	sender := vm.AccountRef(tx.Sender)
	if isCreate {
		// the creation address only depends on sender and nonce
		_, _, leftover, err = evm.Create(sender, tx.Input, gasLimit-intrinsic, value)
	} else {
		db.SetNonce(tx.Sender, db.GetNonce(tx.Sender)+1)
		ret, leftover, err = evm.Call(sender, *tx.Action.To, tx.Input, gasLimit-intrinsic, value)
	}

	used := gasLimit - leftover
	refund := db.GetRefund()
	if limit := used / params.RefundQuotientEIP3529; refund > limit {
		refund = limit
	}
	used -= refund

	resp.ExitReason = exitReason(err)
	resp.Ret = ret
	resp.GasUsed = used
	resp.RemainGas = gasLimit - used

	if resp.ExitReason.IsSucceed() {
		values, logs := db.Deconstruct()
		backend.Apply(values, logs, true)
	}
	return resp
}

// newEvm creates an interpreter instance over the given transient state,
// using the vicinity of the backend if it provides one.
func (e *evmExecutor) newEvm(backend state.Backend, db vm.StateDB, chainCfg *params.ChainConfig, origin common.Address, gasPrice *big.Int) *vm.EVM {
	vicinity := defaultVicinity()
	if p, ok := backend.(state.VicinityProvider); ok {
		if v := p.Vicinity(); v != nil {
			vicinity = v
		}
	}
	if gasPrice == nil {
		gasPrice = vicinity.GasPrice
	}
	blockCtx := prepareBlockCtx(vicinity)
	txCtx := vm.TxContext{
		Origin:   origin,
		GasPrice: bigOrZero(gasPrice),
	}
	return vm.NewEVM(*blockCtx, txCtx, db, chainCfg, e.vmCfg)
}

// GetAccount decodes the account record of the given address.
func (e *evmExecutor) GetAccount(backend state.Reader, addr common.Address) types.Account {
	acc, err := state.ReadAccount(backend, addr.Bytes())
	if err != nil {
		e.log.Criticalf("corrupted account record of %v; %v", addr, err)
		panic(err)
	}
	return acc
}

func defaultVicinity() *types.Vicinity {
	return &types.Vicinity{}
}

// prepareBlockCtx creates the block context of the interpreter. The block
// gas limit is unbounded.
func prepareBlockCtx(vicinity *types.Vicinity) *vm.BlockContext {
	return &vm.BlockContext{
		CanTransfer: core.CanTransfer,
		Transfer:    core.Transfer,
		GetHash:     vicinity.BlockHash,
		Coinbase:    vicinity.Coinbase,
		BlockNumber: new(big.Int).SetUint64(vicinity.BlockNumber),
		Time:        new(big.Int).SetUint64(vicinity.Timestamp),
		Difficulty:  bigOrZero(vicinity.Difficulty),
		BaseFee:     bigOrZero(vicinity.BaseFee),
		GasLimit:    math.MaxUint64,
	}
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
