package cell

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/nervosnetwork/ckb-sdk-go/v2/types/molecule"
)

// OutPointSize is the size of a serialized out-point.
const OutPointSize = common.HashLength + 4

func packHash(h common.Hash) molecule.Byte32 {
	return *molecule.Byte32FromSliceUnchecked(h.Bytes())
}

func packUint32(v uint32) molecule.Uint32 {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return *molecule.Uint32FromSliceUnchecked(b)
}

func packUint64(v uint64) molecule.Uint64 {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return *molecule.Uint64FromSliceUnchecked(b)
}

func packBytes(v []byte) molecule.Bytes {
	items := make([]molecule.Byte, len(v))
	for i, b := range v {
		items[i] = molecule.NewByte(b)
	}
	return molecule.NewBytesBuilder().Set(items).Build()
}

func (o OutPoint) pack() molecule.OutPoint {
	return molecule.NewOutPointBuilder().
		TxHash(packHash(o.TxHash)).
		Index(packUint32(o.Index)).
		Build()
}

func unpackOutPoint(p *molecule.OutPoint) OutPoint {
	return OutPoint{
		TxHash: common.BytesToHash(p.TxHash().RawData()),
		Index:  binary.LittleEndian.Uint32(p.Index().RawData()),
	}
}

// Pack serializes the out-point as a molecule struct: the transaction hash
// followed by the little endian index.
func (o OutPoint) Pack() []byte {
	p := o.pack()
	return p.AsSlice()
}

// UnpackOutPoint parses a serialized out-point.
func UnpackOutPoint(b []byte) (OutPoint, error) {
	p, err := molecule.OutPointFromSlice(b, false)
	if err != nil {
		return OutPoint{}, fmt.Errorf("invalid out point; %v", err)
	}
	return unpackOutPoint(p), nil
}

// PackOutPointVec serializes a list of out-points as a molecule fixvec.
func PackOutPointVec(points []OutPoint) []byte {
	items := make([]molecule.OutPoint, 0, len(points))
	for _, p := range points {
		items = append(items, p.pack())
	}
	vec := molecule.NewOutPointVecBuilder().Set(items).Build()
	return vec.AsSlice()
}

// UnpackOutPointVec parses a molecule fixvec of out-points. The input must
// have exactly the size implied by its item count.
func UnpackOutPointVec(b []byte) ([]OutPoint, error) {
	vec, err := molecule.OutPointVecFromSlice(b, false)
	if err != nil {
		return nil, fmt.Errorf("invalid out point vector; %v", err)
	}
	res := make([]OutPoint, 0, vec.Len())
	for i := uint(0); i < vec.Len(); i++ {
		res = append(res, unpackOutPoint(vec.Get(i)))
	}
	return res, nil
}

func (s *Script) pack() molecule.Script {
	return molecule.NewScriptBuilder().
		CodeHash(packHash(s.CodeHash)).
		HashType(molecule.NewByte(byte(s.HashType))).
		Args(packBytes(s.Args)).
		Build()
}

func (o *CellOutput) pack() molecule.CellOutput {
	typeScript := molecule.NewScriptOptBuilder()
	if o.Type != nil {
		typeScript.Set(o.Type.pack())
	}
	return molecule.NewCellOutputBuilder().
		Capacity(packUint64(o.Capacity)).
		Lock(o.Lock.pack()).
		Type(typeScript.Build()).
		Build()
}

// packRaw serializes the transaction without its witnesses, the part
// covered by the transaction hash.
func (tx *Transaction) packRaw() molecule.RawTransaction {
	deps := make([]molecule.CellDep, 0, len(tx.CellDeps))
	for _, dep := range tx.CellDeps {
		deps = append(deps, molecule.NewCellDepBuilder().
			OutPoint(dep.OutPoint.pack()).
			DepType(molecule.NewByte(byte(dep.DepType))).
			Build())
	}
	headers := make([]molecule.Byte32, 0, len(tx.HeaderDeps))
	for _, h := range tx.HeaderDeps {
		headers = append(headers, packHash(h))
	}
	inputs := make([]molecule.CellInput, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		inputs = append(inputs, molecule.NewCellInputBuilder().
			Since(packUint64(in.Since)).
			PreviousOutput(in.PreviousOutput.pack()).
			Build())
	}
	outputs := make([]molecule.CellOutput, 0, len(tx.Outputs))
	for i := range tx.Outputs {
		outputs = append(outputs, tx.Outputs[i].pack())
	}
	outputsData := make([]molecule.Bytes, 0, len(tx.OutputsData))
	for _, data := range tx.OutputsData {
		outputsData = append(outputsData, packBytes(data))
	}

	return molecule.NewRawTransactionBuilder().
		Version(packUint32(tx.Version)).
		CellDeps(molecule.NewCellDepVecBuilder().Set(deps).Build()).
		HeaderDeps(molecule.NewByte32VecBuilder().Set(headers).Build()).
		Inputs(molecule.NewCellInputVecBuilder().Set(inputs).Build()).
		Outputs(molecule.NewCellOutputVecBuilder().Set(outputs).Build()).
		OutputsData(molecule.NewBytesVecBuilder().Set(outputsData).Build()).
		Build()
}

// ComputeHash returns the transaction hash: the blake2b hash of the
// serialized raw transaction.
func (tx *Transaction) ComputeHash() common.Hash {
	raw := tx.packRaw()
	return DataHash(raw.AsSlice())
}
