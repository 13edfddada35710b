package cell

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ScriptHashType selects how a script's code hash is matched against cells.
type ScriptHashType byte

const (
	HashTypeData ScriptHashType = iota
	HashTypeType
	HashTypeData1
)

// DepType tells whether a cell dependency is a code cell or a group of
// out-points.
type DepType byte

const (
	DepCode DepType = iota
	DepGroup
)

func (t DepType) String() string {
	switch t {
	case DepCode:
		return "code"
	case DepGroup:
		return "dep_group"
	}
	return fmt.Sprintf("DepType(%d)", byte(t))
}

// OutPoint identifies a cell by the transaction creating it and the index
// of the output within that transaction.
type OutPoint struct {
	TxHash common.Hash `json:"tx_hash"`
	Index  uint32      `json:"index"`
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%v:%d", o.TxHash, o.Index)
}

// Script is a lock or type script attached to a cell.
type Script struct {
	CodeHash common.Hash    `json:"code_hash"`
	HashType ScriptHashType `json:"hash_type"`
	Args     hexutil.Bytes  `json:"args"`
}

// CellOutput describes the content of a cell apart from its data.
type CellOutput struct {
	Capacity uint64  `json:"capacity"`
	Lock     Script  `json:"lock"`
	Type     *Script `json:"type" rlp:"nil"`
}

// CellInput references the cell consumed by a transaction input.
type CellInput struct {
	Since          uint64   `json:"since"`
	PreviousOutput OutPoint `json:"previous_output"`
}

// CellDep references a cell a transaction depends on.
type CellDep struct {
	OutPoint OutPoint `json:"out_point"`
	DepType  DepType  `json:"dep_type"`
}

// Transaction is a cell-model transaction.
type Transaction struct {
	Version     uint32          `json:"version"`
	CellDeps    []CellDep       `json:"cell_deps"`
	HeaderDeps  []common.Hash   `json:"header_deps"`
	Inputs      []CellInput     `json:"inputs"`
	Outputs     []CellOutput    `json:"outputs"`
	OutputsData []hexutil.Bytes `json:"outputs_data"`
	Witnesses   []hexutil.Bytes `json:"witnesses"`
}

// TransactionView is a transaction together with its hash.
type TransactionView struct {
	tx   Transaction
	hash common.Hash
}

// NewTransactionView wraps the given transaction, computing its hash.
func NewTransactionView(tx Transaction) *TransactionView {
	return &TransactionView{tx: tx, hash: tx.ComputeHash()}
}

func (v *TransactionView) Hash() common.Hash { return v.hash }

func (v *TransactionView) Data() Transaction { return v.tx }

func (v *TransactionView) Inputs() []CellInput { return v.tx.Inputs }

func (v *TransactionView) CellDeps() []CellDep { return v.tx.CellDeps }

// InputPoints lists the out-points consumed by the inputs, in input order.
func (v *TransactionView) InputPoints() []OutPoint {
	res := make([]OutPoint, 0, len(v.tx.Inputs))
	for _, input := range v.tx.Inputs {
		res = append(res, input.PreviousOutput)
	}
	return res
}

// TransactionInfo locates the on-chain transaction that created a cell.
type TransactionInfo struct {
	BlockHash   common.Hash `json:"block_hash"`
	BlockNumber uint64      `json:"block_number"`
	BlockEpoch  uint64      `json:"block_epoch"`
	Index       uint32      `json:"index"`
}

// CellMeta is a resolved cell.
type CellMeta struct {
	CellOutput      CellOutput       `json:"cell_output"`
	OutPoint        OutPoint         `json:"out_point"`
	TransactionInfo *TransactionInfo `json:"transaction_info"`
	DataBytes       uint64           `json:"data_bytes"`
	MemCellDataHash *common.Hash     `json:"mem_cell_data_hash"`
	MemCellData     hexutil.Bytes    `json:"mem_cell_data"`
}

// NewCellMeta builds the metadata of a cell; content bytes are only attached
// if withData is set.
func NewCellMeta(outPoint OutPoint, output CellOutput, data []byte, info *TransactionInfo, withData bool) *CellMeta {
	meta := &CellMeta{
		CellOutput:      output,
		OutPoint:        outPoint,
		TransactionInfo: info,
		DataBytes:       uint64(len(data)),
	}
	if withData {
		hash := DataHash(data)
		meta.MemCellDataHash = &hash
		meta.MemCellData = append([]byte{}, data...)
	}
	return meta
}

// Copy returns a deep copy of the cell metadata.
func (m *CellMeta) Copy() *CellMeta {
	res := *m
	res.CellOutput.Lock.Args = common.CopyBytes(m.CellOutput.Lock.Args)
	if m.CellOutput.Type != nil {
		typeScript := *m.CellOutput.Type
		typeScript.Args = common.CopyBytes(typeScript.Args)
		res.CellOutput.Type = &typeScript
	}
	if m.TransactionInfo != nil {
		info := *m.TransactionInfo
		res.TransactionInfo = &info
	}
	if m.MemCellDataHash != nil {
		hash := *m.MemCellDataHash
		res.MemCellDataHash = &hash
	}
	res.MemCellData = common.CopyBytes(m.MemCellData)
	return &res
}

// ResolvedTransaction is a transaction with every referenced cell
// materialized. ResolvedCellDeps has dependency groups replaced by their
// members, the group cells themselves are in ResolvedDepGroups.
type ResolvedTransaction struct {
	Transaction       *TransactionView
	ResolvedCellDeps  []*CellMeta
	ResolvedInputs    []*CellMeta
	ResolvedDepGroups []*CellMeta
}
