package cell

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestDataHash_UsesChainPersonalization(t *testing.T) {
	tests := map[string]struct {
		data []byte
		want common.Hash
	}{
		"nil":   {nil, common.HexToHash("0x44f4c69744d5f8c55d642062949dcae49bc4e7ef43d388c5a12f42b5633d163e")},
		"empty": {[]byte{}, common.HexToHash("0x44f4c69744d5f8c55d642062949dcae49bc4e7ef43d388c5a12f42b5633d163e")},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DataHash(test.data); got != test.want {
				t.Errorf("unexpected hash; want %v, got %v", test.want, got)
			}
		})
	}
}

func TestDataHash_DistinguishesContent(t *testing.T) {
	if DataHash([]byte{0}) == DataHash(nil) {
		t.Errorf("hash of a zero byte equals the hash of no data")
	}
}
