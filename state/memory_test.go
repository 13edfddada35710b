package state

import (
	"math/big"
	"testing"

	"github.com/axonweb3/axon-exec/logger"
	"github.com/axonweb3/axon-exec/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func primedBackend(t *testing.T) *KVBackend {
	t.Helper()
	b := MakeMemoryBackend()
	b.Apply([]Apply{
		{Address: addrA, Nonce: 5, Balance: big.NewInt(100)},
		{Address: addrB, Nonce: 1, Balance: big.NewInt(7), Code: []byte{0x60, 0x00},
			Storage: map[common.Hash]common.Hash{{1}: {0x11}}},
	}, nil, true)
	return b
}

func TestOverlay_ReadsThroughToBase(t *testing.T) {
	db := MakeOverlay(primedBackend(t))

	if want, got := big.NewInt(100), db.GetBalance(addrA); want.Cmp(got) != 0 {
		t.Errorf("invalid balance, want %v, got %v", want, got)
	}
	if want, got := uint64(5), db.GetNonce(addrA); want != got {
		t.Errorf("invalid nonce, want %v, got %v", want, got)
	}
	require.Equal(t, []byte{0x60, 0x00}, db.GetCode(addrB))
	require.Equal(t, crypto.Keccak256Hash([]byte{0x60, 0x00}), db.GetCodeHash(addrB))
	require.Equal(t, types.EmptyCodeHash, db.GetCodeHash(addrA))
	require.Equal(t, common.Hash{}, db.GetCodeHash(addrC))
	require.Equal(t, common.Hash{0x11}, db.GetState(addrB, common.Hash{1}))
	require.True(t, db.Exist(addrA))
	require.False(t, db.Exist(addrC))
	require.True(t, db.Empty(addrC))
	require.False(t, db.Empty(addrA))
}

func TestOverlay_DoesNotModifyBase(t *testing.T) {
	base := primedBackend(t)
	root := base.StateRoot()

	db := MakeOverlay(base)
	db.AddBalance(addrA, big.NewInt(1))
	db.SetState(addrB, common.Hash{1}, common.Hash{2})
	db.SetNonce(addrC, 9)

	require.Equal(t, root, base.StateRoot())
	require.Equal(t, common.Hash{0x11}, base.Storage(addrB, common.Hash{1}))
}

func TestOverlay_RevertToSnapshotDiscardsLaterChanges(t *testing.T) {
	db := MakeOverlay(primedBackend(t))

	db.SetState(addrA, common.Hash{1}, common.Hash{1})
	db.AddRefund(10)
	id := db.Snapshot()
	db.SetState(addrA, common.Hash{1}, common.Hash{2})
	db.AddBalance(addrA, big.NewInt(50))
	db.AddRefund(5)
	db.AddLog(&ethtypes.Log{Address: addrA})
	db.AddAddressToAccessList(addrC)

	db.RevertToSnapshot(id)

	require.Equal(t, common.Hash{1}, db.GetState(addrA, common.Hash{1}))
	require.Equal(t, big.NewInt(100), db.GetBalance(addrA))
	require.Equal(t, uint64(10), db.GetRefund())
	require.Empty(t, db.GetLogs())
	require.False(t, db.AddressInAccessList(addrC))
}

func TestOverlay_NestedSnapshots(t *testing.T) {
	db := MakeOverlay(primedBackend(t))

	outer := db.Snapshot()
	db.SetNonce(addrA, 6)
	inner := db.Snapshot()
	db.SetNonce(addrA, 7)

	db.RevertToSnapshot(inner)
	require.Equal(t, uint64(6), db.GetNonce(addrA))
	db.RevertToSnapshot(outer)
	require.Equal(t, uint64(5), db.GetNonce(addrA))
}

func TestOverlay_RevertToUnknownSnapshotPanics(t *testing.T) {
	db := MakeOverlay(MakeMemoryBackend())
	require.Panics(t, func() { db.RevertToSnapshot(42) })
}

func TestOverlay_CreateAccountResetsAllButBalance(t *testing.T) {
	db := MakeOverlay(primedBackend(t))

	db.CreateAccount(addrB)

	require.Equal(t, big.NewInt(7), db.GetBalance(addrB))
	require.Equal(t, uint64(0), db.GetNonce(addrB))
	require.Empty(t, db.GetCode(addrB))
	require.Equal(t, common.Hash{}, db.GetState(addrB, common.Hash{1}))
	require.Equal(t, common.Hash{}, db.GetCommittedState(addrB, common.Hash{1}))

	changes, _ := db.Deconstruct()
	require.Len(t, changes, 1)
	require.True(t, changes[0].ResetStorage)
}

func TestOverlay_CommittedStateIgnoresPendingWrites(t *testing.T) {
	db := MakeOverlay(primedBackend(t))
	db.SetState(addrB, common.Hash{1}, common.Hash{0x22})

	require.Equal(t, common.Hash{0x22}, db.GetState(addrB, common.Hash{1}))
	require.Equal(t, common.Hash{0x11}, db.GetCommittedState(addrB, common.Hash{1}))
}

func TestOverlay_AddZeroBalanceTouchesAccount(t *testing.T) {
	db := MakeOverlay(MakeMemoryBackend())
	db.AddBalance(addrC, new(big.Int))

	require.True(t, db.Exist(addrC))
	require.True(t, db.Empty(addrC))

	changes, _ := db.Deconstruct()
	require.Len(t, changes, 1)
	require.True(t, changes[0].IsEmpty())
}

func TestOverlay_SuicideBecomesDeletion(t *testing.T) {
	db := MakeOverlay(primedBackend(t))

	require.False(t, db.Suicide(addrC))
	require.True(t, db.Suicide(addrB))
	require.True(t, db.HasSuicided(addrB))
	require.Equal(t, 0, db.GetBalance(addrB).Sign())

	changes, _ := db.Deconstruct()
	require.Equal(t, []Apply{{Address: addrB, Delete: true}}, changes)
}

func TestOverlay_DeconstructIsSortedAndComplete(t *testing.T) {
	db := MakeOverlay(primedBackend(t))
	db.SetNonce(addrC, 1)
	db.SubBalance(addrA, big.NewInt(40))
	db.SetState(addrB, common.Hash{2}, common.Hash{3})
	db.AddLog(&ethtypes.Log{Address: addrB})

	changes, logs := db.Deconstruct()
	require.Len(t, changes, 3)
	require.Equal(t, addrA, changes[0].Address)
	require.Equal(t, addrB, changes[1].Address)
	require.Equal(t, addrC, changes[2].Address)

	require.Equal(t, big.NewInt(60), changes[0].Balance)
	require.Equal(t, uint64(5), changes[0].Nonce)
	require.Equal(t, []byte{0x60, 0x00}, changes[1].Code)
	require.Equal(t, map[common.Hash]common.Hash{{2}: {3}}, changes[1].Storage)
	require.False(t, changes[1].ResetStorage)
	require.Len(t, logs, 1)
}

func TestOverlay_AppliedChangesReachBackend(t *testing.T) {
	base := primedBackend(t)
	db := MakeOverlay(base)
	db.SubBalance(addrA, big.NewInt(10))
	db.AddBalance(addrC, big.NewInt(10))
	db.SetNonce(addrA, 6)

	changes, logs := db.Deconstruct()
	base.Apply(changes, logs, true)

	acc, err := ReadAccount(base, addrC.Bytes())
	require.NoError(t, err)
	require.Equal(t, big.NewInt(10), acc.Balance)
	acc, err = ReadAccount(base, addrA.Bytes())
	require.NoError(t, err)
	require.Equal(t, big.NewInt(90), acc.Balance)
	require.Equal(t, uint64(6), acc.Nonce)
}

func TestOverlay_LogsAreAttributedAndIndexed(t *testing.T) {
	db := MakeOverlay(MakeMemoryBackend())
	db.Prepare(common.Hash{0xaa}, 3)

	db.AddLog(&ethtypes.Log{Address: addrA})
	id := db.Snapshot()
	db.AddLog(&ethtypes.Log{Address: addrB})
	db.RevertToSnapshot(id)
	db.AddLog(&ethtypes.Log{Address: addrC})

	logs := db.GetLogs()
	require.Len(t, logs, 2)
	for i, log := range logs {
		require.Equal(t, common.Hash{0xaa}, log.TxHash)
		require.Equal(t, uint(3), log.TxIndex)
		require.Equal(t, uint(i), log.Index)
	}
	require.Equal(t, addrC, logs[1].Address)
}

func TestOverlay_AccessList(t *testing.T) {
	db := MakeOverlay(MakeMemoryBackend())
	dest := addrB
	db.PrepareAccessList(addrA, &dest, []common.Address{{9}}, ethtypes.AccessList{
		{Address: addrC, StorageKeys: []common.Hash{{1}}},
	})

	require.True(t, db.AddressInAccessList(addrA))
	require.True(t, db.AddressInAccessList(addrB))
	require.True(t, db.AddressInAccessList(common.Address{9}))
	addrOk, slotOk := db.SlotInAccessList(addrC, common.Hash{1})
	require.True(t, addrOk)
	require.True(t, slotOk)
	addrOk, slotOk = db.SlotInAccessList(addrA, common.Hash{1})
	require.True(t, addrOk)
	require.False(t, slotOk)
}

func TestOverlay_SubRefundBelowZeroPanics(t *testing.T) {
	db := MakeOverlay(MakeMemoryBackend())
	db.AddRefund(1)
	require.Panics(t, func() { db.SubRefund(2) })
}

func TestOverlay_CorruptedAccountPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := NewMockReader(ctrl)
	base.EXPECT().Get(addrA.Bytes()).Return([]byte{0xff, 0x01}, true)

	db := MakeOverlay(base)
	require.Panics(t, func() { db.GetNonce(addrA) })
}

func TestOverlay_BaseAccountIsLoadedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := NewMockReader(ctrl)
	base.EXPECT().Get(addrA.Bytes()).Return(nil, false).Times(1)

	db := MakeOverlay(base)
	require.Equal(t, uint64(0), db.GetNonce(addrA))
	require.Equal(t, 0, db.GetBalance(addrA).Sign())
	require.False(t, db.Exist(addrA))
}

func TestLoggingBackend_ForwardsAndLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockBackend(ctrl)
	log := logger.NewMockLogger(ctrl)

	root := common.Hash{0x12}
	inner.EXPECT().StateRoot().Return(root)
	log.EXPECT().Debugf("StateRoot, %v", root)

	inner.EXPECT().Apply(nil, nil, true)
	log.EXPECT().Debugf("Apply, %d changes, %d logs, %t", 0, 0, true)

	backend := MakeLoggingBackend(inner, log)
	require.Equal(t, root, backend.StateRoot())
	backend.Apply(nil, nil, true)
}
