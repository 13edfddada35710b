package cell

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func testOutput(capacity uint64) CellOutput {
	return CellOutput{
		Capacity: capacity,
		Lock:     Script{CodeHash: common.Hash{0xaa}, HashType: HashTypeType, Args: []byte{1, 2}},
	}
}

func TestMemoryProvider_ReportsLiveDeadAndUnknownCells(t *testing.T) {
	p := NewMemoryProvider()
	live := OutPoint{TxHash: common.Hash{1}}
	dead := OutPoint{TxHash: common.Hash{2}}
	info := &TransactionInfo{BlockNumber: 5}

	p.Insert(live, testOutput(100), []byte("data"), info)
	p.Insert(dead, testOutput(200), nil, nil)
	require.True(t, p.Kill(dead))
	require.False(t, p.Kill(OutPoint{TxHash: common.Hash{3}}))

	status := p.Cell(live, true)
	require.True(t, status.IsLive())
	require.Equal(t, live, status.Meta.OutPoint)
	require.Equal(t, uint64(4), status.Meta.DataBytes)
	require.Equal(t, []byte("data"), []byte(status.Meta.MemCellData))
	require.Equal(t, DataHash([]byte("data")), *status.Meta.MemCellDataHash)
	require.Equal(t, info, status.Meta.TransactionInfo)

	require.Equal(t, Dead, p.Cell(dead, true).Kind)
	require.Equal(t, Unknown, p.Cell(OutPoint{TxHash: common.Hash{3}}, true).Kind)
}

func TestMemoryProvider_WithoutDataOmitsContent(t *testing.T) {
	p := NewMemoryProvider()
	op := OutPoint{TxHash: common.Hash{1}}
	p.Insert(op, testOutput(100), []byte("data"), nil)

	status := p.Cell(op, false)
	require.True(t, status.IsLive())
	require.Equal(t, uint64(4), status.Meta.DataBytes)
	require.Nil(t, status.Meta.MemCellData)
	require.Nil(t, status.Meta.MemCellDataHash)
}

func TestCellStore_PersistsCells(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenCellStore(dir, false)
	require.NoError(t, err)

	op := OutPoint{TxHash: common.Hash{7}, Index: 3}
	typeScript := &Script{CodeHash: common.Hash{0xbb}}
	output := testOutput(42)
	output.Type = typeScript
	require.NoError(t, store.Put(op, output, []byte{9, 9}, &TransactionInfo{BlockNumber: 11, Index: 2}))
	require.NoError(t, store.Close())

	store, err = OpenCellStore(dir, false)
	require.NoError(t, err)
	defer store.Close()

	status := store.Cell(op, true)
	require.True(t, status.IsLive())
	require.Equal(t, uint64(42), status.Meta.CellOutput.Capacity)
	require.Equal(t, typeScript.CodeHash, status.Meta.CellOutput.Type.CodeHash)
	require.Equal(t, []byte{1, 2}, []byte(status.Meta.CellOutput.Lock.Args))
	require.Equal(t, []byte{9, 9}, []byte(status.Meta.MemCellData))
	require.Equal(t, uint64(11), status.Meta.TransactionInfo.BlockNumber)

	require.NoError(t, store.Kill(op))
	require.Equal(t, Dead, store.Cell(op, true).Kind)

	has, err := store.Has(op)
	require.NoError(t, err)
	require.True(t, has)

	missing := OutPoint{TxHash: common.Hash{8}}
	require.Equal(t, Unknown, store.Cell(missing, true).Kind)
	has, err = store.Has(missing)
	require.NoError(t, err)
	require.False(t, has)
	require.Error(t, store.Kill(missing))
}

func TestCachedProvider_LiveCellsAreServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockCellProvider(ctrl)
	op := OutPoint{TxHash: common.Hash{1}}
	meta := NewCellMeta(op, testOutput(1), []byte{1}, nil, true)

	inner.EXPECT().Cell(op, true).Return(LiveCell(meta)).Times(1)

	p, err := NewCachedProvider(inner, 16)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		status := p.Cell(op, true)
		require.True(t, status.IsLive())
		require.Equal(t, meta, status.Meta)
	}
	require.Equal(t, 1, p.Len())
}

func TestCachedProvider_ReturnedCellsDoNotAliasTheCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockCellProvider(ctrl)
	op := OutPoint{TxHash: common.Hash{1}}
	info := &TransactionInfo{BlockNumber: 3}
	meta := NewCellMeta(op, testOutput(1), []byte{1, 2, 3}, info, true)

	inner.EXPECT().Cell(op, true).Return(LiveCell(meta)).Times(1)

	p, err := NewCachedProvider(inner, 16)
	require.NoError(t, err)

	first := p.Cell(op, true).Meta
	first.MemCellData[0] = 0xff
	first.CellOutput.Lock.Args[0] = 0xff
	first.TransactionInfo.BlockNumber = 9
	*first.MemCellDataHash = common.Hash{}

	second := p.Cell(op, true).Meta
	require.NotSame(t, first, second)
	require.Equal(t, []byte{1, 2, 3}, []byte(second.MemCellData))
	require.Equal(t, []byte{1, 2}, []byte(second.CellOutput.Lock.Args))
	require.Equal(t, uint64(3), second.TransactionInfo.BlockNumber)
	require.Equal(t, DataHash([]byte{1, 2, 3}), *second.MemCellDataHash)
}

func TestCachedProvider_DeadCellsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockCellProvider(ctrl)
	op := OutPoint{TxHash: common.Hash{1}}

	inner.EXPECT().Cell(op, false).Return(DeadCell).Times(2)

	p, err := NewCachedProvider(inner, 16)
	require.NoError(t, err)

	require.Equal(t, Dead, p.Cell(op, false).Kind)
	require.Equal(t, Dead, p.Cell(op, false).Kind)
	require.Equal(t, 0, p.Len())
}

func TestCachedProvider_InvalidateForcesLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockCellProvider(ctrl)
	op := OutPoint{TxHash: common.Hash{1}}
	meta := NewCellMeta(op, testOutput(1), nil, nil, false)

	gomock.InOrder(
		inner.EXPECT().Cell(op, false).Return(LiveCell(meta)),
		inner.EXPECT().Cell(op, false).Return(DeadCell),
	)

	p, err := NewCachedProvider(inner, 16)
	require.NoError(t, err)

	require.True(t, p.Cell(op, false).IsLive())
	p.Invalidate(op)
	require.Equal(t, Dead, p.Cell(op, false).Kind)
}
