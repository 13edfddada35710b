package cell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

func TestOutPoint_PackUsesLittleEndianIndex(t *testing.T) {
	op := OutPoint{TxHash: common.Hash{1, 2, 3}, Index: 0x01020304}
	packed := op.Pack()

	if want, got := OutPointSize, len(packed); want != got {
		t.Fatalf("unexpected size, want %d, got %d", want, got)
	}
	if !bytes.Equal(packed[:32], op.TxHash[:]) {
		t.Errorf("unexpected tx hash prefix %x", packed[:32])
	}
	if want, got := []byte{4, 3, 2, 1}, packed[32:]; !bytes.Equal(want, got) {
		t.Errorf("unexpected index encoding, want %x, got %x", want, got)
	}
}

func TestOutPointVec_PackHasCountHeader(t *testing.T) {
	points := []OutPoint{{TxHash: common.Hash{1}, Index: 0}, {TxHash: common.Hash{2}, Index: 7}}
	packed := PackOutPointVec(points)

	if want, got := 4+2*OutPointSize, len(packed); want != got {
		t.Fatalf("unexpected size, want %d, got %d", want, got)
	}
	if want, got := []byte{2, 0, 0, 0}, packed[:4]; !bytes.Equal(want, got) {
		t.Errorf("unexpected header, want %x, got %x", want, got)
	}

	res, err := UnpackOutPointVec(packed)
	if err != nil {
		t.Fatalf("failed to unpack: %v", err)
	}
	if want, got := len(points), len(res); want != got {
		t.Fatalf("unexpected number of points, want %d, got %d", want, got)
	}
	for i := range points {
		if points[i] != res[i] {
			t.Errorf("point %d mismatch, want %v, got %v", i, points[i], res[i])
		}
	}
}

func TestOutPointVec_EmptyVectorIsValid(t *testing.T) {
	res, err := UnpackOutPointVec([]byte{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("failed to unpack empty vector: %v", err)
	}
	if len(res) != 0 {
		t.Errorf("expected no points, got %v", res)
	}
}

func TestOutPointVec_MalformedInputIsRejected(t *testing.T) {
	valid := PackOutPointVec([]OutPoint{{Index: 1}})
	tests := map[string][]byte{
		"short header":   {1, 0},
		"missing item":   {1, 0, 0, 0},
		"trailing bytes": append(append([]byte{}, valid...), 0),
		"truncated item": valid[:len(valid)-1],
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := UnpackOutPointVec(test)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.HasPrefix(err.Error(), "invalid out point vector") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUnpackOutPoint_RejectsWrongSize(t *testing.T) {
	if _, err := UnpackOutPoint(make([]byte, OutPointSize-1)); err == nil {
		t.Errorf("expected an error for a short out point")
	}
}

func TestTransactionHash_IgnoresWitnesses(t *testing.T) {
	tx := Transaction{
		CellDeps: []CellDep{{OutPoint: OutPoint{TxHash: common.Hash{1}}, DepType: DepGroup}},
		Inputs:   []CellInput{{PreviousOutput: OutPoint{TxHash: common.Hash{2}, Index: 1}}},
		Outputs: []CellOutput{{
			Capacity: 100,
			Lock:     Script{CodeHash: common.Hash{3}, HashType: HashTypeType, Args: []byte{1}},
		}},
		OutputsData: []hexutil.Bytes{{0xaa}},
	}
	signed := tx
	signed.Witnesses = []hexutil.Bytes{{1, 2, 3}}

	if want, got := NewTransactionView(tx).Hash(), NewTransactionView(signed).Hash(); want != got {
		t.Errorf("witnesses changed the hash, want %v, got %v", want, got)
	}
}

func TestTransactionHash_CoversRawFields(t *testing.T) {
	base := Transaction{
		Inputs:      []CellInput{{PreviousOutput: OutPoint{TxHash: common.Hash{2}}}},
		Outputs:     []CellOutput{{Capacity: 100}},
		OutputsData: []hexutil.Bytes{{}},
	}
	typed := base
	typed.Outputs = []CellOutput{{Capacity: 100, Type: &Script{}}}
	data := base
	data.OutputsData = []hexutil.Bytes{{1}}
	since := base
	since.Inputs = []CellInput{{Since: 1, PreviousOutput: OutPoint{TxHash: common.Hash{2}}}}

	hash := base.ComputeHash()
	for name, tx := range map[string]Transaction{"type script": typed, "output data": data, "since": since} {
		if got := tx.ComputeHash(); got == hash {
			t.Errorf("changing the %s did not change the hash", name)
		}
	}
}
