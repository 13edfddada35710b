package cell

import (
	"fmt"
	"hash"

	"github.com/ethereum/go-ethereum/common"
	blake2b "github.com/minio/blake2b-simd"
)

// ckbHashPersonalization is the blake2b personalization of every hash on
// the cell-model chain.
var ckbHashPersonalization = []byte("ckb-default-hash")

// newHasher creates a blake2b-256 hasher with the chain personalization.
func newHasher() hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: common.HashLength, Person: ckbHashPersonalization})
	if err != nil {
		panic(fmt.Errorf("cannot create blake2b hasher; %v", err))
	}
	return h
}

// DataHash computes the content hash of cell data.
func DataHash(data []byte) common.Hash {
	h := newHasher()
	h.Write(data)
	return common.BytesToHash(h.Sum(nil))
}
