package types

import "fmt"

// ExitKind classifies the outcome of an interpreter run.
type ExitKind byte

const (
	KindSucceed ExitKind = iota
	KindRevert
	KindError
	KindFatal
)

func (k ExitKind) String() string {
	switch k {
	case KindSucceed:
		return "succeed"
	case KindRevert:
		return "revert"
	case KindError:
		return "error"
	case KindFatal:
		return "fatal"
	}
	return fmt.Sprintf("ExitKind(%d)", byte(k))
}

// ExitError names the interpreter failure behind a KindError outcome.
type ExitError byte

const (
	NoExitError ExitError = iota
	OutOfGas
	StackUnderflow
	StackOverflow
	InvalidJump
	InvalidOpcode
	OutOfFund
	CallTooDeep
	CreateCollision
	CreateContractLimit
	InvalidCode
	WriteProtection
	ReturnDataOutOfBounds
	GasOverflow
	NonceOverflow
	OtherError
)

var exitErrorNames = map[ExitError]string{
	NoExitError:           "none",
	OutOfGas:              "out of gas",
	StackUnderflow:        "stack underflow",
	StackOverflow:         "stack overflow",
	InvalidJump:           "invalid jump",
	InvalidOpcode:         "invalid opcode",
	OutOfFund:             "out of fund",
	CallTooDeep:           "call too deep",
	CreateCollision:       "create collision",
	CreateContractLimit:   "create contract limit",
	InvalidCode:           "invalid code",
	WriteProtection:       "write protection",
	ReturnDataOutOfBounds: "return data out of bounds",
	GasOverflow:           "gas overflow",
	NonceOverflow:         "nonce overflow",
	OtherError:            "other",
}

func (e ExitError) String() string {
	if name, ok := exitErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ExitError(%d)", byte(e))
}

// ExitReason is the exit status of a single execution. Interpreter failures
// are reported through it and never as Go errors.
type ExitReason struct {
	Kind ExitKind
	Err  ExitError
}

var (
	Succeed  = ExitReason{Kind: KindSucceed}
	Reverted = ExitReason{Kind: KindRevert}
)

// Failed creates a KindError outcome for the given failure.
func Failed(err ExitError) ExitReason {
	return ExitReason{Kind: KindError, Err: err}
}

func (r ExitReason) IsSucceed() bool { return r.Kind == KindSucceed }

func (r ExitReason) IsRevert() bool { return r.Kind == KindRevert }

func (r ExitReason) String() string {
	if r.Kind == KindError || r.Kind == KindFatal {
		return fmt.Sprintf("%v(%v)", r.Kind, r.Err)
	}
	return r.Kind.String()
}
