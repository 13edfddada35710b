package executor

import (
	"errors"

	"github.com/axonweb3/axon-exec/types"
	"github.com/ethereum/go-ethereum/core/vm"
)

// exitErrors maps the interpreter's sentinel errors to exit errors.
var exitErrors = []struct {
	err  error
	exit types.ExitError
}{
	{vm.ErrOutOfGas, types.OutOfGas},
	{vm.ErrCodeStoreOutOfGas, types.OutOfGas},
	{vm.ErrDepth, types.CallTooDeep},
	{vm.ErrInsufficientBalance, types.OutOfFund},
	{vm.ErrContractAddressCollision, types.CreateCollision},
	{vm.ErrMaxCodeSizeExceeded, types.CreateContractLimit},
	{vm.ErrInvalidJump, types.InvalidJump},
	{vm.ErrWriteProtection, types.WriteProtection},
	{vm.ErrReturnDataOutOfBounds, types.ReturnDataOutOfBounds},
	{vm.ErrGasUintOverflow, types.GasOverflow},
	{vm.ErrInvalidCode, types.InvalidCode},
	{vm.ErrNonceUintOverflow, types.NonceOverflow},
}

// exitReason converts the error returned by the interpreter into an exit
// status. A nil error is a successful execution.
func exitReason(err error) types.ExitReason {
	if err == nil {
		return types.Succeed
	}
	if errors.Is(err, vm.ErrExecutionReverted) {
		return types.Reverted
	}
	for _, cur := range exitErrors {
		if errors.Is(err, cur.err) {
			return types.Failed(cur.exit)
		}
	}

	var (
		underflow *vm.ErrStackUnderflow
		overflow  *vm.ErrStackOverflow
		invalidOp *vm.ErrInvalidOpCode
	)
	switch {
	case errors.As(err, &underflow):
		return types.Failed(types.StackUnderflow)
	case errors.As(err, &overflow):
		return types.Failed(types.StackOverflow)
	case errors.As(err, &invalidOp):
		return types.Failed(types.InvalidOpcode)
	}
	return types.Failed(types.OtherError)
}
